// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package overlay

// New returns the [Bridge] for the current platform.
// Dear ImGui is not available in the browser, so this is a [Passive] bridge.
func New() Bridge {
	return NewPassive()
}
