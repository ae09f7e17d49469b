// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package driver

import (
	"cogentcore.org/gpuhost/system"
	"cogentcore.org/gpuhost/system/driver/web"
)

// New returns the platform for the current build target.
func New() system.Platform {
	return web.New()
}
