// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpuhost hosts an application in a window that continuously
// renders a 3D scene with an immediate-mode UI overlay on top, natively
// and in the browser. Applications implement [system.App] and call [Run].
package gpuhost

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/gpuhost/base/logx"
	"cogentcore.org/gpuhost/config"
	"cogentcore.org/gpuhost/events/key"
	"cogentcore.org/gpuhost/gpu"
	"cogentcore.org/gpuhost/overlay"
	"cogentcore.org/gpuhost/render"
	"cogentcore.org/gpuhost/system"
	"cogentcore.org/gpuhost/system/driver"
)

// Option is an option for [Run].
type Option func(o *options)

type options struct {
	config     *config.Config
	configFile string
	args       []string
	platform   system.Platform
	overlay    system.OverlayFactory
}

// WithConfig runs with the given config instead of parsing
// the command line.
func WithConfig(c *config.Config) Option {
	return func(o *options) { o.config = c }
}

// WithConfigFile runs with the config in the given TOML file.
func WithConfigFile(filename string) Option {
	return func(o *options) { o.configFile = filename }
}

// WithArgs parses the config from the given command line
// arguments instead of those of the process.
func WithArgs(args ...string) Option {
	return func(o *options) { o.args = args }
}

// WithPlatform runs on the given platform instead of the
// one for the build target.
func WithPlatform(p system.Platform) Option {
	return func(o *options) { o.platform = p }
}

// WithOverlay creates the UI overlay with the given function
// instead of [overlay.New].
func WithOverlay(f system.OverlayFactory) Option {
	return func(o *options) { o.overlay = f }
}

// Run runs app until it exits. Errors that prevent the window,
// device, or event loop from starting are returned, for the caller
// to report; Run never exits the process itself.
func Run(app system.App, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	level, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logx.Init(level)

	pl := o.platform
	if pl == nil {
		pl = driver.New()
	}
	wopts := system.WindowOptions{
		Title:    cfg.Title,
		Size:     image.Pt(cfg.Width, cfg.Height),
		CanvasID: cfg.CanvasID,
	}
	c := system.NewController(app, pl, wopts, NewRenderer(cfg))
	c.NewOverlay = o.overlay
	if c.NewOverlay == nil {
		c.NewOverlay = func(win system.Window) overlay.Bridge { return overlay.New() }
	}
	c.CancelKey = key.CodeFromName(cfg.CancelKey)
	slog.Info("gpuhost: starting", "platform", pl.Name(), "title", cfg.Title)
	return c.Run()
}

func loadConfig(o *options) (*config.Config, error) {
	switch {
	case o.config != nil:
		return o.config, o.config.Validate()
	case o.configFile != "":
		c := config.New()
		if err := c.Open(o.configFile); err != nil {
			return nil, err
		}
		return c, c.Validate()
	}
	args := o.args
	if args == nil && len(os.Args) > 1 {
		args = os.Args[1:]
	}
	name := "gpuhost"
	if len(os.Args) > 0 {
		name = filepath.Base(os.Args[0])
	}
	return config.Parse(name, args)
}

// NewRenderer returns the [system.RendererFactory] that creates a
// [gpu.Device] on the surface of the window and a [render.Renderer]
// drawing to it, with the settings of the given config.
func NewRenderer(cfg *config.Config) system.RendererFactory {
	return func(win system.Window, size image.Point, prof gpu.Profile) (system.Renderer, error) {
		src, ok := win.(gpu.SurfaceSource)
		if !ok {
			return nil, fmt.Errorf("gpuhost: window %T cannot provide a surface", win)
		}
		opts := &gpu.Options{
			Label:           cfg.Title,
			PresentMode:     cfg.PresentMode,
			MaxFrameLatency: cfg.MaxFrameLatency,
		}
		dev, err := gpu.New(src.SurfaceDescriptor(), size, prof, opts)
		if err != nil {
			return nil, err
		}
		return render.New(dev, cfg)
	}
}
