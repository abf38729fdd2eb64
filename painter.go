// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import "fmt"

// Painter is the subset of an HTML Canvas style 2D context the renderer
// draws with. Styles are CSS color strings such as "rgb(10, 20, 30)".
//
// canvas.Canvas is the raster implementation.
type Painter interface {
	SetFillStyle(style string)
	SetStrokeStyle(style string)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke() error
	Fill() error
}

// DrawTriangle outlines and fills t with c. The path is closed before the
// fill so the outline has no open edge.
func DrawTriangle(p Painter, t Triangle, c Color) error {
	style := c.String()
	p.SetFillStyle(style)
	p.SetStrokeStyle(style)

	p.BeginPath()
	p.MoveTo(t.Top.X, t.Top.Y)
	p.LineTo(t.Left.X, t.Left.Y)
	p.LineTo(t.Right.X, t.Right.Y)
	p.ClosePath()

	if err := p.Stroke(); err != nil {
		return fmt.Errorf("sierpinski: stroke: %w", err)
	}
	if err := p.Fill(); err != nil {
		return fmt.Errorf("sierpinski: fill: %w", err)
	}
	return nil
}
