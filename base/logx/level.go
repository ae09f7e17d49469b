// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user-selected logging level and a
// colorized [slog.Handler] used as the default logger.
package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity level that the user has selected.
// Messages at or above this level are shown. The default is
// [slog.LevelInfo], or [slog.LevelDebug] with the debug build tag
// and [slog.LevelWarn] with the release build tag.
var UserLevel = defaultUserLevel

// ParseLevel returns the [slog.Level] named by the given string,
// which is one of debug, info, warn, or error (case insensitive).
// The empty string is the current [UserLevel].
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return UserLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return UserLevel, fmt.Errorf("logx: unknown log level %q", s)
}
