// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"io/fs"
	"time"

	"github.com/gogpu/sierpinski/canvas"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Canvas     string        // registered surface name, e.g. "canvas"
	Width      int           // surface width in pixels
	Height     int           // surface height in pixels
	Background string        // color style painted first; empty is transparent
	Assets     fs.FS         // where Image is read from
	Image      string        // resource id of the sprite, e.g. "Idle (1).png"
	Output     string        // file to write; empty skips saving
	Timeout    time.Duration // bound on the image load; 0 waits indefinitely
}

// DefaultConfig returns the configuration of the sierpinski command
// without an asset root.
func DefaultConfig() Config {
	return Config{
		Canvas: canvas.DefaultName,
		Width:  600,
		Height: 600,
		Image:  "Idle (1).png",
		Output: "sierpinski.png",
	}
}
