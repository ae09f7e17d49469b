// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/spf13/pflag"
)

// Parse returns a [Config] built from the defaults, then the TOML file
// named by the --config flag (if any), then the remaining flags, and
// validates the result. args should not include the program name.
func Parse(name string, args []string) (*Config, error) {
	c := New()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	file := fs.String("config", "", "TOML config file to load")
	c.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *file != "" {
		// the file is applied under the flags: reload it into a fresh
		// config, then replay the flags that were set explicitly
		fc := New()
		if err := fc.Open(*file); err != nil {
			return nil, err
		}
		var ferr error
		fs.Visit(func(f *pflag.Flag) {
			if f.Name == "config" || ferr != nil {
				return
			}
			ferr = applyFlag(fc, f)
		})
		if ferr != nil {
			return nil, ferr
		}
		c = fc
	}
	return c, c.Validate()
}

// AddFlags adds command line flags for the fields of c to fs,
// with the current values of c as defaults.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.StringVar(&c.CanvasID, "canvas-id", c.CanvasID, "canvas element id on the web")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, or error")
	fs.StringVar(&c.PresentMode, "present-mode", c.PresentMode, "surface present mode: fifo, immediate, or mailbox")
	fs.IntVar(&c.MaxFrameLatency, "max-frame-latency", c.MaxFrameLatency, "desired maximum frame latency (1 or 2)")
	fs.Float32Var(&c.AngularVelocity, "angular-velocity", c.AngularVelocity, "model rotation speed in degrees per second")
	fs.StringVar(&c.CancelKey, "cancel-key", c.CancelKey, "key that exits the app; empty to disable")
}

func applyFlag(c *Config, f *pflag.Flag) error {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	c.AddFlags(fs)
	return fs.Set(f.Name, f.Value.String())
}
