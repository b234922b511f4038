// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot/internal/config"
)

const settle = 100 * time.Millisecond

func renderCmd() *cobra.Command {
	var (
		out   string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "render FILE.toml",
		Short: "Render a figure to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			if out == "" {
				out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
			}
			render := func() error {
				start := time.Now()
				if err := renderFile(cmd.Context(), in, out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					good.Sprint("rendered"), out, subtle.Sprintf("(%v)", time.Since(start).Round(time.Millisecond)))
				return nil
			}
			if !watch {
				return render()
			}

			if err := render(); err != nil {
				bad.Fprintf(cmd.ErrOrStderr(), "ggplot: %v\n", err)
			}
			subtle.Fprintf(cmd.OutOrStdout(), "watching %s, interrupt to stop\n", in)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchFile(ctx, in, func() {
				if err := render(); err != nil {
					bad.Fprintf(cmd.ErrOrStderr(), "ggplot: %v\n", err)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output PNG (default FILE.png)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render whenever the figure file changes")
	return cmd
}

// renderFile builds the figure in path and writes one frame to out. The
// image is written even when some renderers failed; their errors are
// returned afterwards.
func renderFile(ctx context.Context, path, out string) error {
	fig, err := config.Load(path)
	if err != nil {
		return err
	}
	p, err := config.Build(ctx, fig, filepath.Dir(path))
	if err != nil {
		return err
	}
	defer p.Close()

	frameErr := p.View.Render()
	if err := p.View.SavePNG(out); err != nil {
		return err
	}
	if frameErr != nil {
		return fmt.Errorf("%s: %w", out, frameErr)
	}
	return nil
}

// watchFile calls fn after path changes, once the burst of editor writes
// has settled. It watches the parent directory so that editors replacing
// the file by rename are seen. It returns when ctx is done.
func watchFile(ctx context.Context, path string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fn()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
