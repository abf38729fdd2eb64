// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"errors"
	"fmt"
	"log/slog"
)

// Depth is the recursion depth used by the sierpinski command.
const Depth = 4

// ErrNegativeDepth is returned by Render for depth < 0.
var ErrNegativeDepth = errors.New("sierpinski: negative depth")

// Option configures a Renderer.
type Option func(*Renderer)

// WithColorSource sets where per-level fill colors come from.
// The default samples the process-wide random generator.
func WithColorSource(src ColorSource) Option {
	return func(r *Renderer) {
		r.colors = src
	}
}

// Renderer draws Sierpinski triangles onto a Painter.
type Renderer struct {
	colors ColorSource
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.colors == nil {
		r.colors = ColorFunc(randomColor)
	}
	return r
}

// Render subdivides t depth times. Each call with depth > 0 samples one
// color, then for each corner sub-triangle draws it with that color and
// recurses at depth-1. The medial triangle is left as background.
//
// Render draws TriangleCount(depth) triangles. The first Painter error stops
// the recursion and is returned.
func (r *Renderer) Render(p Painter, t Triangle, depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	Logger().Debug("sierpinski: render",
		slog.Int("depth", depth),
		slog.Int("triangles", TriangleCount(depth)))
	return r.render(p, t, depth)
}

func (r *Renderer) render(p Painter, t Triangle, depth int) error {
	if depth == 0 {
		return nil
	}

	c := r.colors.NextColor()
	for _, sub := range t.Subdivide() {
		if err := DrawTriangle(p, sub, c); err != nil {
			return err
		}
		if err := r.render(p, sub, depth-1); err != nil {
			return err
		}
	}
	return nil
}

// TriangleCount returns how many triangles Render draws at depth:
// 3 + 9 + ... + 3^depth = (3^(depth+1) - 3) / 2.
func TriangleCount(depth int) int {
	if depth <= 0 {
		return 0
	}
	pow := 1
	for i := 0; i <= depth; i++ {
		pow *= 3
	}
	return (pow - 3) / 2
}
