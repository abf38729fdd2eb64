// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/sierpinski"
)

// Canvas is a raster surface with HTML Canvas path semantics: BeginPath
// starts a new path, Stroke and Fill leave the path in place, and fill and
// stroke colors are tracked separately.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dc     *gg.Context
	fill   color.Color
	stroke color.Color
}

var _ sierpinski.Painter = (*Canvas)(nil)

// New creates a gg-backed Canvas. Fill and stroke styles start black and
// the line width starts at 1.
func New(opts Options) (*Canvas, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	c := &Canvas{
		dc:     gg.NewContext(opts.Width, opts.Height),
		fill:   color.Black,
		stroke: color.Black,
	}
	c.dc.SetLineWidth(1)

	if opts.Background != "" {
		if err := c.Clear(opts.Background); err != nil {
			_ = c.dc.Close()
			return nil, err
		}
	}
	return c, nil
}

// Width returns the width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// SetFillStyle sets the fill color. Unparsable styles are ignored.
func (c *Canvas) SetFillStyle(style string) {
	if col, ok := c.parse("fill", style); ok {
		c.fill = col
	}
}

// SetStrokeStyle sets the outline color. Unparsable styles are ignored.
func (c *Canvas) SetStrokeStyle(style string) {
	if col, ok := c.parse("stroke", style); ok {
		c.stroke = col
	}
}

func (c *Canvas) parse(kind, style string) (color.Color, bool) {
	col, err := ParseColor(style)
	if err != nil {
		sierpinski.Logger().Warn("canvas: style ignored",
			slog.String("kind", kind),
			slog.String("style", style),
			slog.Any("err", err))
		return nil, false
	}
	return col, true
}

// SetLineWidth sets the outline width in pixels.
func (c *Canvas) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

// LineTo adds a straight segment to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

// ClosePath joins the current point back to the subpath start.
func (c *Canvas) ClosePath() {
	c.dc.ClosePath()
}

// Stroke outlines the current path with the stroke color.
func (c *Canvas) Stroke() error {
	c.dc.SetColor(c.stroke)
	if err := c.dc.StrokePreserve(); err != nil {
		return fmt.Errorf("canvas: stroke: %w", err)
	}
	return nil
}

// Fill fills the current path with the fill color.
func (c *Canvas) Fill() error {
	c.dc.SetColor(c.fill)
	if err := c.dc.FillPreserve(); err != nil {
		return fmt.Errorf("canvas: fill: %w", err)
	}
	return nil
}

// DrawImage blits img with its top-left corner at (x, y).
// A nil image draws nothing.
func (c *Canvas) DrawImage(img *gg.ImageBuf, x, y float64) {
	if img == nil {
		return
	}
	c.dc.DrawImage(img, x, y)
}

// Clear fills the whole surface with style, ignoring the current path.
func (c *Canvas) Clear(style string) error {
	col, err := ParseColor(style)
	if err != nil {
		return err
	}
	c.dc.ClearWithColor(gg.FromColor(col))
	return nil
}

// Image returns a snapshot of the surface.
func (c *Canvas) Image() image.Image {
	_ = c.dc.FlushGPU()
	return c.dc.Image()
}

// Close releases the surface. It is safe to call more than once.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
