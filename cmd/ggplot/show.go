// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/integration/ebitenhost"
	"github.com/gogpu/ggplot/internal/config"
)

// binding is one keyboard shortcut of the show window.
type binding struct {
	key  ebiten.Key
	help string
	run  func(p *config.Plot) error
}

func toggle(name string) func(*config.Plot) error {
	return func(p *config.Plot) error { return p.View.Surface().Toggle(name) }
}

var bindings = []binding{
	{ebiten.KeyP, "toggle pan", toggle("pan")},
	{ebiten.KeyW, "toggle wheel zoom", toggle("wheel_zoom")},
	{ebiten.KeyS, "toggle box select", toggle("box_select")},
	{ebiten.KeyR, "toggle resize", toggle("resize")},
	{ebiten.KeyX, "clear the active tool", func(p *config.Plot) error {
		p.View.Surface().Manager().Clear()
		return nil
	}},
	{ebiten.KeyC, "clear the selection", func(p *config.Plot) error { return p.Source.ClearSelection() }},
	{ebiten.KeyU, "undo range change", func(p *config.Plot) error { return p.View.Undo() }},
	{ebiten.KeyY, "redo range change", func(p *config.Plot) error { return p.View.Redo() }},
	{ebiten.KeyDigit0, "reset ranges", func(p *config.Plot) error { return p.View.Reset() }},
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE.toml",
		Short: "Open a figure in an interactive window",
		Long: "Open a figure in an interactive window.\n\n" +
			"Drag with the armed tool, shift-drag to box zoom from idle and\n" +
			"alt-drag to resize. Keys switch tools and walk the range history.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fig, err := config.Load(args[0])
			if err != nil {
				return err
			}
			p, err := config.Build(cmd.Context(), fig, filepath.Dir(args[0]))
			if err != nil {
				return err
			}
			defer p.Close()

			h := ebitenhost.New(p.View)
			for _, b := range bindings {
				h.Bind(b.key, func() {
					if err := b.run(p); err != nil {
						ggplot.Logger().Warn("key binding failed", "key", b.key, "err", err)
					}
				})
			}
			printKeys(cmd.OutOrStdout())

			title := fig.Title
			if title == "" {
				title = filepath.Base(args[0])
			}
			return h.Run(title)
		},
	}
}

func printKeys(w io.Writer) {
	fmt.Fprintln(w, brand.Sprint("ggplot show"))
	for _, b := range bindings {
		fmt.Fprintf(w, "  %-8s %s\n", b.key, subtle.Sprint(b.help))
	}
}
