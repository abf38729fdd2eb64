// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas provides named raster drawing surfaces with an HTML Canvas
// style path API, implemented on github.com/gogpu/gg.
//
// Surfaces are looked up by name in a registry. The built-in "canvas" entry
// creates a software raster:
//
//	c, err := canvas.Acquire(canvas.DefaultName, canvas.Options{Width: 600, Height: 600})
//	if err != nil {
//		log.Fatal(err) // no surface, nothing to draw on
//	}
//	defer c.Close()
//
//	c.SetFillStyle("rgb(200, 30, 30)")
//	c.BeginPath()
//	c.MoveTo(300, 0)
//	c.LineTo(0, 600)
//	c.LineTo(600, 600)
//	c.ClosePath()
//	_ = c.Fill()
//	_ = c.Save("out.png")
//
// Styles accept rgb(), rgba(), #rgb, #rrggbb, #rrggbbaa and the SVG color
// keywords. Like HTML Canvas, an unparsable style is ignored.
package canvas
