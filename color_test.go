// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"image/color"
	"testing"
)

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{RGB(0, 0, 0), "rgb(0, 0, 0)"},
		{RGB(255, 255, 255), "rgb(255, 255, 255)"},
		{RGB(12, 200, 7), "rgb(12, 200, 7)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorStd(t *testing.T) {
	got := RGB(1, 2, 3).Color()
	if got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Color() = %v", got)
	}
}

func TestRandomColorsDeterministic(t *testing.T) {
	a := NewRandomColors(42)
	b := NewRandomColors(42)
	for i := 0; i < 100; i++ {
		if ca, cb := a.NextColor(), b.NextColor(); ca != cb {
			t.Fatalf("draw %d: %v != %v with equal seeds", i, ca, cb)
		}
	}
}

func TestRandomColorsCoverRange(t *testing.T) {
	src := NewRandomColors(7)
	var seen [256]bool
	for i := 0; i < 20000; i++ {
		c := src.NextColor()
		seen[c.R] = true
		seen[c.G] = true
		seen[c.B] = true
	}
	// Both ends of [0, 255] must be reachable.
	if !seen[0] || !seen[255] {
		t.Errorf("seen[0] = %v, seen[255] = %v; want both true", seen[0], seen[255])
	}
}

func TestColorFunc(t *testing.T) {
	f := ColorFunc(func() Color { return RGB(9, 8, 7) })
	if got := f.NextColor(); got != RGB(9, 8, 7) {
		t.Errorf("NextColor() = %v", got)
	}
}
