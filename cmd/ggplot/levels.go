// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/glyph"
)

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List render levels back to front",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for i, l := range ggplot.AllLevels() {
				clip := "unclipped"
				if l.Clipped() {
					clip = "clipped to the plot area"
				}
				fmt.Fprintf(w, "%d  %-10s %s\n", i, brand.Sprint(l), subtle.Sprint(clip))
			}
			return nil
		},
	}
}

func glyphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glyphs",
		Short: "List glyph kinds usable in figure files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range glyph.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}
