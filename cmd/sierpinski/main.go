// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sierpinski loads a sprite, draws it and overlays a Sierpinski
// triangle, then saves the canvas as an image.
//
// Usage:
//
//	sierpinski [--assets dir] [--image "Idle (1).png"] [--output sierpinski.png]
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
