// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"sync"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String returns the CSS form "rgb(r, g, b)" accepted as a fill or stroke style.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Color converts c to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ColorSource supplies the fill color for each subdivision step.
type ColorSource interface {
	NextColor() Color
}

// ColorFunc adapts a function to ColorSource.
type ColorFunc func() Color

// NextColor calls f.
func (f ColorFunc) NextColor() Color { return f() }

// RandomColors samples each channel independently and uniformly in [0, 255].
// It is safe for concurrent use.
type RandomColors struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomColors returns a deterministic source seeded with seed.
func NewRandomColors(seed uint64) *RandomColors {
	return &RandomColors{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextColor returns a fresh random color.
func (s *RandomColors) NextColor() Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Color{
		R: uint8(s.rng.IntN(256)),
		G: uint8(s.rng.IntN(256)),
		B: uint8(s.rng.IntN(256)),
	}
}

// randomColor samples from the process-wide generator.
func randomColor() Color {
	return Color{R: uint8(rand.IntN(256)), G: uint8(rand.IntN(256)), B: uint8(rand.IntN(256))}
}
