// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Lockcost plots the cost of the cache lock against the number of
// contending threads, with a LOESS regression line.
//
// Usage:
//
//	lockcost [-o out.png] [-dpi n] [data.csv]
//
// Without an input file lockcost plots the built-in measurements.
// An input CSV has the columns thrnum and lockcost.
package main

import (
	"fmt"
	"io"

	"github.com/hybridlru/benchviz/chart"
	"github.com/hybridlru/benchviz/frame"
	"github.com/hybridlru/benchviz/internal/cmdutil"
)

func main() {
	cmdutil.Main("lockcost", lockcost)
}

func lockcost(stdout, stderr io.Writer, args []string) error {
	fs := cmdutil.NewFlagSet("lockcost", "[options] [data.csv]", stderr)
	out := fs.String("o", "multi_threads_on_naive_lockcost.png", "write the chart to `file`")
	dpi := fs.Int("dpi", chart.DPI, "output resolution in `dots` per inch")
	if err := cmdutil.Parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return cmdutil.ErrUsage
	}

	c := chart.LockCostSamples()
	if fs.NArg() == 1 {
		t, err := frame.ReadCSVFile(fs.Arg(0))
		if err != nil {
			return err
		}
		c, err = frame.Columns(t, "thrnum", "lockcost", "lockcost")
		if err != nil {
			return fmt.Errorf("%s: %w", fs.Arg(0), err)
		}
	}

	p, err := chart.LockCost(c)
	if err != nil {
		return err
	}
	return chart.Save(p, chart.LockCostSize, chart.LockCostSize, *dpi, *out)
}
