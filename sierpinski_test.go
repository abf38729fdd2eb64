// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"errors"
	"testing"
)

func TestRenderDrawCount(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, 0},
		{1, 3},
		{2, 12},
		{3, 39},
		{4, 120},
	}
	for _, tt := range tests {
		var r recorder
		src := &fixedColors{}
		err := NewRenderer(WithColorSource(src)).Render(&r, CanvasTriangle(600, 600), tt.depth)
		if err != nil {
			t.Fatalf("depth %d: Render() error = %v", tt.depth, err)
		}
		if len(r.triangles) != tt.want {
			t.Errorf("depth %d: drew %d triangles, want %d", tt.depth, len(r.triangles), tt.want)
		}
		if got := TriangleCount(tt.depth); got != tt.want {
			t.Errorf("TriangleCount(%d) = %d, want %d", tt.depth, got, tt.want)
		}
		// One color per invocation with depth > 0: 1 + 3 + 9 + ...
		if want := tt.want / 3; src.n != want {
			t.Errorf("depth %d: sampled %d colors, want %d", tt.depth, src.n, want)
		}
	}
}

func TestRenderDepthZeroDoesNothing(t *testing.T) {
	var r recorder
	src := &fixedColors{}
	if err := NewRenderer(WithColorSource(src)).Render(&r, CanvasTriangle(600, 600), 0); err != nil {
		t.Fatal(err)
	}
	if len(r.ops) != 0 || src.n != 0 {
		t.Errorf("depth 0: %d ops, %d colors; want none", len(r.ops), src.n)
	}
}

func TestRenderNegativeDepth(t *testing.T) {
	var r recorder
	err := NewRenderer().Render(&r, CanvasTriangle(600, 600), -1)
	if !errors.Is(err, ErrNegativeDepth) {
		t.Errorf("Render(-1) error = %v, want ErrNegativeDepth", err)
	}
	if len(r.ops) != 0 {
		t.Errorf("Render(-1) issued %d ops", len(r.ops))
	}
}

func TestRenderSharesColorPerLevel(t *testing.T) {
	var r recorder
	src := &fixedColors{}
	if err := NewRenderer(WithColorSource(src)).Render(&r, CanvasTriangle(600, 600), 1); err != nil {
		t.Fatal(err)
	}
	if len(r.fills) != 3 {
		t.Fatalf("got %d fills, want 3", len(r.fills))
	}
	for i, f := range r.fills {
		if f != "rgb(1, 0, 0)" {
			t.Errorf("fill %d style = %q, want rgb(1, 0, 0)", i, f)
		}
	}
}

func TestRenderOrderDepthTwo(t *testing.T) {
	var r recorder
	src := &fixedColors{}
	tri := CanvasTriangle(600, 600)
	if err := NewRenderer(WithColorSource(src)).Render(&r, tri, 2); err != nil {
		t.Fatal(err)
	}

	// Depth-first: draw a corner with the outer color, then its three
	// children with a fresh color, before moving to the next corner.
	wantStyles := []string{
		"rgb(1, 0, 0)", "rgb(2, 0, 0)", "rgb(2, 0, 0)", "rgb(2, 0, 0)",
		"rgb(1, 0, 0)", "rgb(3, 0, 0)", "rgb(3, 0, 0)", "rgb(3, 0, 0)",
		"rgb(1, 0, 0)", "rgb(4, 0, 0)", "rgb(4, 0, 0)", "rgb(4, 0, 0)",
	}
	if len(r.fills) != len(wantStyles) {
		t.Fatalf("got %d fills, want %d", len(r.fills), len(wantStyles))
	}
	for i := range wantStyles {
		if r.fills[i] != wantStyles[i] {
			t.Errorf("fill %d = %q, want %q", i, r.fills[i], wantStyles[i])
		}
	}

	corners := tri.Subdivide()
	for i, idx := range []int{0, 4, 8} {
		if r.triangles[idx] != corners[i] {
			t.Errorf("triangle %d = %v, want corner %v", idx, r.triangles[idx], corners[i])
		}
	}
	medial := tri.Medial()
	for i, drawn := range r.triangles {
		if drawn == medial {
			t.Errorf("triangle %d is the medial triangle", i)
		}
	}
}

func TestRenderStopsOnPainterError(t *testing.T) {
	r := recorder{failAfter: 2}
	err := NewRenderer(WithColorSource(&fixedColors{})).Render(&r, CanvasTriangle(600, 600), 4)
	if !errors.Is(err, errFill) {
		t.Fatalf("Render() error = %v, want %v", err, errFill)
	}
	if r.fillCount != 2 {
		t.Errorf("kept drawing after error: %d fills", r.fillCount)
	}
}

func TestRenderCanvasCornersDepthFour(t *testing.T) {
	var r recorder
	tri := Tri(Pt(300, 0), Pt(0, 600), Pt(600, 600))
	if err := NewRenderer().Render(&r, tri, Depth); err != nil {
		t.Fatal(err)
	}
	if len(r.triangles) != 120 {
		t.Errorf("drew %d triangles, want 120", len(r.triangles))
	}
	for i, drawn := range r.triangles {
		for _, p := range drawn.Points() {
			if p.X < 0 || p.X > 600 || p.Y < 0 || p.Y > 600 {
				t.Fatalf("triangle %d vertex %v outside the canvas", i, p)
			}
		}
	}
}

func TestTriangleCountNegative(t *testing.T) {
	if got := TriangleCount(-3); got != 0 {
		t.Errorf("TriangleCount(-3) = %d, want 0", got)
	}
}
