// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/gogpu/sierpinski"
)

// Loader starts asynchronous image loads from a Fetcher.
type Loader struct {
	fetcher Fetcher
}

// New creates a Loader reading from fetcher.
func New(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Pending is an in-flight or settled load.
type Pending struct {
	id     string
	future *Future
	image  atomic.Pointer[gg.ImageBuf]
}

// Load begins fetching and decoding id and returns at once.
//
// The load settles exactly once: with success when the image decodes, with
// a *LoadError when fetching or decoding fails, or with ctx.Err() when ctx
// ends first. No retries are made.
func (l *Loader) Load(ctx context.Context, id string) *Pending {
	p := &Pending{id: id, future: NewFuture()}
	if id == "" {
		p.future.Fail(ErrEmptyID)
		return p
	}

	go p.watch(ctx)
	go p.run(ctx, l.fetcher)
	return p
}

// watch fails p if ctx ends before the load settles.
func (p *Pending) watch(ctx context.Context) {
	select {
	case <-p.future.Done():
	case <-ctx.Done():
		if p.future.Fail(ctx.Err()) {
			sierpinski.Logger().Debug("loader: canceled", slog.String("id", p.id), slog.Any("err", ctx.Err()))
		}
	}
}

func (p *Pending) run(ctx context.Context, fetcher Fetcher) {
	log := sierpinski.Logger()

	rc, err := fetcher.Fetch(ctx, p.id)
	if err != nil {
		p.future.Fail(&LoadError{ID: p.id, Op: "fetch", Err: err})
		return
	}
	defer func() { _ = rc.Close() }()

	img, format, err := Decode(rc)
	if err != nil {
		p.future.Fail(&LoadError{ID: p.id, Op: "decode", Err: err})
		return
	}

	// Publish before resolving so a waiter that sees success can draw it.
	// Image hides it if the watcher won.
	p.image.Store(img)
	if !p.future.Succeed() {
		return
	}
	log.Debug("loader: decoded",
		slog.String("id", p.id),
		slog.String("format", format),
		slog.Int("width", img.Width()),
		slog.Int("height", img.Height()))
}

// ID returns the requested resource id.
func (p *Pending) ID() string {
	return p.id
}

// Done returns a channel closed once the load settles.
func (p *Pending) Done() <-chan struct{} {
	return p.future.Done()
}

// Wait blocks until the load settles or ctx ends. It returns nil only when
// the image is ready to draw.
func (p *Pending) Wait(ctx context.Context) error {
	return p.future.Wait(ctx)
}

// Err returns the settled outcome, or ErrPending.
func (p *Pending) Err() error {
	return p.future.Err()
}

// Image returns the decoded image. It is nil unless the load succeeded.
func (p *Pending) Image() *gg.ImageBuf {
	if p.future.Err() != nil {
		return nil
	}
	return p.image.Load()
}
