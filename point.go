// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

// Point is a position in surface space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Mid returns the midpoint of a and b. Mid(a, b) == Mid(b, a).
func Mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
