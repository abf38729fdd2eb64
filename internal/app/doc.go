// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app runs the sierpinski drawing sequence: acquire a canvas, load
// the sprite image, wait for it, blit it, draw the fractal and save.
package app
