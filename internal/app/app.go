// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/canvas"
	"github.com/gogpu/sierpinski/loader"
)

// Errors.
var (
	// ErrStartup wraps failures that leave nothing to draw on.
	ErrStartup = errors.New("app: startup")

	// ErrLoad wraps a failed, timed out or canceled image load.
	ErrLoad = errors.New("app: image load")
)

// Option configures an App.
type Option func(*App)

// WithColorSource overrides the renderer's color source.
func WithColorSource(src sierpinski.ColorSource) Option {
	return func(a *App) {
		a.colors = src
	}
}

// App wires a canvas, a loader and a renderer together.
type App struct {
	cfg    Config
	colors sierpinski.ColorSource
}

// New creates an App.
func New(cfg Config, opts ...Option) *App {
	a := &App{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run performs the whole sequence once. Drawing only starts after the image
// load settles; a failed load aborts before anything is drawn or saved.
func (a *App) Run(ctx context.Context) error {
	log := sierpinski.Logger()
	log.Info("Hello world!")

	if a.cfg.Assets == nil {
		return fmt.Errorf("%w: no asset root", ErrStartup)
	}
	c, err := canvas.Acquire(a.cfg.Canvas, canvas.Options{
		Width:      a.cfg.Width,
		Height:     a.cfg.Height,
		Background: a.cfg.Background,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}
	defer func() { _ = c.Close() }()

	loadCtx := ctx
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	pending := loader.New(loader.FSFetcher{FS: a.cfg.Assets}).Load(loadCtx, a.cfg.Image)
	if err := pending.Wait(loadCtx); err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	img := pending.Image()
	log.Info("image loaded",
		slog.String("id", pending.ID()),
		slog.Int("width", img.Width()),
		slog.Int("height", img.Height()))

	c.DrawImage(img, 0, 0)

	var opts []sierpinski.Option
	if a.colors != nil {
		opts = append(opts, sierpinski.WithColorSource(a.colors))
	}
	tri := sierpinski.CanvasTriangle(float64(c.Width()), float64(c.Height()))
	if err := sierpinski.NewRenderer(opts...).Render(c, tri, sierpinski.Depth); err != nil {
		return fmt.Errorf("app: render: %w", err)
	}

	if a.cfg.Output == "" {
		return nil
	}
	if err := c.Save(a.cfg.Output); err != nil {
		return fmt.Errorf("app: save: %w", err)
	}
	log.Info("saved", slog.String("path", a.cfg.Output))
	return nil
}
