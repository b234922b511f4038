// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command ggplot renders TOML figure documents to PNG and shows them in an
// interactive window.
//
// Usage:
//
//	ggplot render fig.toml -o fig.png [--watch]
//	ggplot show fig.toml
//	ggplot levels
//	ggplot glyphs
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
