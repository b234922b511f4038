// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot"
)

var (
	brand  = color.New(color.FgHiGreen, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
)

func newRootCmd() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:           "ggplot",
		Short:         "Render and explore gg plots described in TOML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !debug {
				return
			}
			ggplot.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log frames and tool activity to stderr")
	root.AddCommand(renderCmd(), showCmd(), levelsCmd(), glyphsCmd())
	wrapErrors(root)
	return root
}

// wrapErrors prints command errors in red before they reach main.
func wrapErrors(c *cobra.Command) {
	for _, sub := range c.Commands() {
		run := sub.RunE
		if run == nil {
			continue
		}
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if err != nil {
				bad.Fprintf(cmd.ErrOrStderr(), "ggplot: %v\n", err)
			}
			return err
		}
	}
}
