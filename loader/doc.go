// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loader fetches and decodes a bitmap asynchronously and reports
// completion through a one-shot signal.
//
// Load returns immediately with a Pending handle. The decode goroutine and a
// watcher on the caller's context race to settle it; whichever is first wins
// and the other becomes a no-op:
//
//	l := loader.New(loader.FSFetcher{FS: os.DirFS("assets")})
//	p := l.Load(ctx, "Idle (1).png")
//	if err := p.Wait(ctx); err != nil {
//		return err // nothing to draw
//	}
//	dc.DrawImage(p.Image(), 0, 0)
//
// Supported formats: PNG, JPEG, GIF, BMP, TIFF and WebP.
package loader
