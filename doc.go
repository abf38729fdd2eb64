// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sierpinski draws Sierpinski-triangle fractals onto a 2D painter.
//
// # Overview
//
// A Renderer takes a Triangle and a depth. At every depth above zero it picks
// one color, draws the three corner sub-triangles with it and recurses into
// each. The center (medial) triangle is never touched, which produces the
// fractal's holes.
//
//	r := sierpinski.NewRenderer()
//	err := r.Render(painter, sierpinski.CanvasTriangle(600, 600), sierpinski.Depth)
//
// # Painters
//
// Painter mirrors the HTML Canvas path API (SetFillStyle, BeginPath, MoveTo,
// LineTo, ClosePath, Stroke, Fill). The canvas sub-package implements it on
// top of gg. Tests use recording painters to count draw calls.
//
// # Colors
//
// Colors come from a ColorSource. The default samples each channel uniformly
// in [0, 255]; NewRandomColors gives a seeded, reproducible sequence.
//
// # Sub-packages
//
//   - canvas: named raster surfaces backed by github.com/gogpu/gg
//   - loader: asynchronous image loading with a one-shot completion signal
//   - internal/app: the load-then-draw sequence used by cmd/sierpinski
package sierpinski
