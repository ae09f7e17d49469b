// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lv, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)

	lv, err = ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lv)

	lv, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, UserLevel, lv)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelInfo))
	lg.Debug("hidden")
	lg.Info("surface configured", "width", 1280)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "surface configured")
	assert.Contains(t, out, "width=1280")
	assert.Contains(t, out, "INFO")
}
