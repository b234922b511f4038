// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package guide

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gonum.org/v1/plot"
)

// Ticker chooses tick marks for a continuous axis. Ticks with an empty
// label are minor ticks.
type Ticker interface {
	Ticks(min, max float64) []plot.Tick
}

// NumberTicker places ticks with plot.DefaultTicks and formats their
// labels for a locale, keeping the precision DefaultTicks chose.
type NumberTicker struct {
	// Printer formats labels. Nil means English.
	Printer *message.Printer
}

var englishPrinter = message.NewPrinter(language.English)

// Ticks implements Ticker. An empty or inverted interval has no ticks.
func (t NumberTicker) Ticks(min, max float64) []plot.Tick {
	if !(max > min) {
		return nil
	}
	pr := t.Printer
	if pr == nil {
		pr = englishPrinter
	}
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, tk := range ticks {
		if tk.Label == "" || strings.ContainsAny(tk.Label, "eE") {
			continue
		}
		prec := 0
		if dot := strings.IndexByte(tk.Label, '.'); dot >= 0 {
			prec = len(tk.Label) - dot - 1
		}
		ticks[i].Label = pr.Sprint(number.Decimal(tk.Value,
			number.MinFractionDigits(prec), number.MaxFractionDigits(prec)))
	}
	return ticks
}

// tick is a resolved tick: a device coordinate along the axis and an
// optional label.
type tick struct {
	pos   float64
	label string
}

func (t tick) major() bool { return t.label != "" }
