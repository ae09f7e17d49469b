// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the settings of a rendering host,
// loaded from TOML files and command line flags.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"cogentcore.org/gpuhost/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config contains the settings for the window, surface, and scene.
// Use [New] or [Config.Defaults] to get the default values.
type Config struct {

	// Title is the window title, or the document title on the web.
	Title string `toml:"title"`

	// Width is the initial inner width of the window in logical pixels.
	// On the web it is the canvas width.
	Width int `toml:"width"`

	// Height is the initial inner height of the window in logical pixels.
	// On the web it is the canvas height.
	Height int `toml:"height"`

	// CanvasID is the id of the canvas element to render into on the web.
	CanvasID string `toml:"canvas_id"`

	// LogLevel is the minimum level of log messages: debug, info, warn, or error.
	LogLevel string `toml:"log_level"`

	// PresentMode is the requested surface present mode: fifo, immediate,
	// or mailbox. It is only used if the surface supports it; the empty
	// string selects the first mode the surface supports.
	PresentMode string `toml:"present_mode"`

	// MaxFrameLatency is the desired number of frames that may be queued
	// for presentation. It is clamped to the range [1, 2].
	MaxFrameLatency int `toml:"max_frame_latency"`

	// ClearColor is the linear RGBA color the frame is cleared to.
	ClearColor [4]float64 `toml:"clear_color"`

	// AngularVelocity is the rotation speed of the scene model, in degrees per second.
	AngularVelocity float32 `toml:"angular_velocity"`

	// CancelKey is the name of the key that requests exit.
	// The empty string disables exiting from the keyboard.
	CancelKey string `toml:"cancel_key"`
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.Title = "gpuhost"
	c.Width = 1280
	c.Height = 720
	c.CanvasID = "canvas"
	c.LogLevel = "info"
	c.PresentMode = ""
	c.MaxFrameLatency = 2
	c.ClearColor = [4]float64{0.19, 0.24, 0.42, 1}
	c.AngularVelocity = 30
	c.CancelKey = "escape"
}

// PresentModes are the accepted values of [Config.PresentMode].
var PresentModes = []string{"", "fifo", "immediate", "mailbox"}

// Validate normalizes the config, clamping sizes and latency into range.
// It returns an error for values that cannot be normalized.
func (c *Config) Validate() error {
	c.Width = max(c.Width, 1)
	c.Height = max(c.Height, 1)
	c.MaxFrameLatency = min(max(c.MaxFrameLatency, 1), 2)
	if c.CanvasID == "" {
		c.CanvasID = "canvas"
	}
	c.PresentMode = strings.ToLower(strings.TrimSpace(c.PresentMode))
	for _, pm := range PresentModes {
		if c.PresentMode == pm {
			return nil
		}
	}
	return fmt.Errorf("config: unknown present mode %q", c.PresentMode)
}

// Open reads the given TOML file on top of the current values of c.
func (c *Config) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return c.Read(b)
}

// OpenOptional is like [Config.Open], except that a missing file is not an error.
func (c *Config) OpenOptional(filename string) error {
	err := c.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Read reads TOML data on top of the current values of c.
func (c *Config) Read(b []byte) error {
	d := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields()
	if err := d.Decode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Save writes c to the given file as TOML.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
