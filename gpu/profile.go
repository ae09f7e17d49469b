// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/cogentcore/webgpu/wgpu"

// Profile is the set of device limits requested for a platform.
type Profile struct {

	// Name is a short name for logging.
	Name string

	// MaxTextureDimension2D is the largest 2D texture requested,
	// which bounds the surface size.
	MaxTextureDimension2D uint32

	// MaxBindGroups is the number of bind groups requested.
	MaxBindGroups uint32
}

// DesktopProfile returns the profile for native desktop platforms.
func DesktopProfile() Profile {
	return Profile{Name: "desktop", MaxTextureDimension2D: 4096, MaxBindGroups: 4}
}

// BrowserProfile returns the profile for browsers, which is limited
// to what a WebGL2 class device supports.
func BrowserProfile() Profile {
	return Profile{Name: "browser", MaxTextureDimension2D: 2048, MaxBindGroups: 4}
}

// Limits returns the device limits for the profile,
// starting from the WebGPU default limits.
func (p Profile) Limits() wgpu.Limits {
	l := wgpu.DefaultLimits()
	l.MaxTextureDimension2D = p.MaxTextureDimension2D
	if p.MaxBindGroups > 0 {
		l.MaxBindGroups = p.MaxBindGroups
	}
	return l
}
