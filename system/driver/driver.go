// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver provides the [system.Platform] for the current
// build target: the desktop platform natively and the web platform
// in the browser.
package driver
