// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"errors"
	"fmt"
)

// recorder is a Painter that records every call.
type recorder struct {
	ops       []string
	fills     []string // fill style at each Fill
	triangles []Triangle
	path      []Point
	fillStyle string
	failAfter int // fail the nth Fill when > 0
	fillCount int
}

func (r *recorder) SetFillStyle(s string) {
	r.fillStyle = s
	r.ops = append(r.ops, "fillStyle "+s)
}

func (r *recorder) SetStrokeStyle(s string) { r.ops = append(r.ops, "strokeStyle "+s) }

func (r *recorder) BeginPath() {
	r.path = r.path[:0]
	r.ops = append(r.ops, "beginPath")
}

func (r *recorder) MoveTo(x, y float64) {
	r.path = append(r.path, Pt(x, y))
	r.ops = append(r.ops, fmt.Sprintf("moveTo %g %g", x, y))
}

func (r *recorder) LineTo(x, y float64) {
	r.path = append(r.path, Pt(x, y))
	r.ops = append(r.ops, fmt.Sprintf("lineTo %g %g", x, y))
}

func (r *recorder) ClosePath() { r.ops = append(r.ops, "closePath") }

func (r *recorder) Stroke() error {
	r.ops = append(r.ops, "stroke")
	return nil
}

func (r *recorder) Fill() error {
	r.ops = append(r.ops, "fill")
	r.fillCount++
	if r.failAfter > 0 && r.fillCount >= r.failAfter {
		return errFill
	}
	r.fills = append(r.fills, r.fillStyle)
	if len(r.path) == 3 {
		r.triangles = append(r.triangles, Tri(r.path[0], r.path[1], r.path[2]))
	}
	return nil
}

var errFill = errors.New("recorder: fill failed")

// fixedColors returns colors 1, 2, 3, ... in the red channel.
type fixedColors struct{ n int }

func (f *fixedColors) NextColor() Color {
	f.n++
	return RGB(uint8(f.n), 0, 0)
}
