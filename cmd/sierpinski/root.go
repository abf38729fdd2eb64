// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/internal/app"
)

func newRootCmd() *cobra.Command {
	cfg := app.DefaultConfig()
	var (
		assets  string
		timeout time.Duration
		verbose bool
	)

	root := &cobra.Command{
		Use:           "sierpinski",
		Short:         "Draw a sprite and a Sierpinski triangle to an image file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			l := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			sierpinski.SetLogger(l)
			gg.SetLogger(l)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Assets = os.DirFS(assets)
			cfg.Timeout = timeout
			return app.New(cfg).Run(cmd.Context())
		},
	}

	flags := root.Flags()
	flags.StringVar(&assets, "assets", ".", "directory the image is loaded from")
	flags.StringVar(&cfg.Image, "image", cfg.Image, "image to draw before the fractal")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file (.png, .bmp, .tif, .tiff)")
	flags.StringVar(&cfg.Background, "background", cfg.Background, "canvas background color (CSS style)")
	flags.DurationVar(&timeout, "timeout", 0, "give up waiting for the image after this long (0 waits forever)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return root
}
