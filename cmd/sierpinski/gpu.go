// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build gpu

package main

// GPU acceleration through wgpu. If no adapter is available gg logs a
// warning and keeps rendering on the CPU.
import _ "github.com/gogpu/gg/gpu"
