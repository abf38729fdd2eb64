// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

// Triangle is three points ordered top, left, right. The order only matters
// for which midpoints are paired during subdivision. Collinear points are
// accepted and simply draw nothing visible.
type Triangle struct {
	Top, Left, Right Point
}

// Tri is a convenience function to create a Triangle.
func Tri(top, left, right Point) Triangle {
	return Triangle{Top: top, Left: left, Right: right}
}

// CanvasTriangle returns the largest upright triangle for a w×h canvas:
// apex at the top center, base along the bottom edge.
func CanvasTriangle(w, h float64) Triangle {
	return Triangle{
		Top:   Pt(w/2, 0),
		Left:  Pt(0, h),
		Right: Pt(w, h),
	}
}

// Points returns the vertices in path order.
func (t Triangle) Points() [3]Point {
	return [3]Point{t.Top, t.Left, t.Right}
}

// Subdivide returns the three corner sub-triangles, each keeping one vertex
// of t: the top, left and right corners, in that order.
func (t Triangle) Subdivide() [3]Triangle {
	tl := Mid(t.Top, t.Left)
	tr := Mid(t.Top, t.Right)
	lr := Mid(t.Left, t.Right)
	return [3]Triangle{
		{Top: t.Top, Left: tl, Right: tr},
		{Top: tl, Left: t.Left, Right: lr},
		{Top: tr, Left: lr, Right: t.Right},
	}
}

// Medial returns the triangle formed by the three edge midpoints.
// Renderer never draws it; it is the hole in the fractal.
func (t Triangle) Medial() Triangle {
	return Triangle{
		Top:   Mid(t.Left, t.Right),
		Left:  Mid(t.Top, t.Left),
		Right: Mid(t.Top, t.Right),
	}
}
