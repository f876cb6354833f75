// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Threadscatter plots elapsed time against thread number.
//
// Usage:
//
//	threadscatter [-dpi n] data.csv out.png
//
// The input CSV has one row per run with the columns thrnum and cost.
package main

import (
	"fmt"
	"io"

	"github.com/hybridlru/benchviz/chart"
	"github.com/hybridlru/benchviz/frame"
	"github.com/hybridlru/benchviz/internal/cmdutil"
)

func main() {
	cmdutil.Main("threadscatter", threadscatter)
}

func threadscatter(stdout, stderr io.Writer, args []string) error {
	fs := cmdutil.NewFlagSet("threadscatter", "[options] data.csv out.png", stderr)
	dpi := fs.Int("dpi", chart.DPI, "output resolution in `dots` per inch")
	if err := cmdutil.Parse(fs, args); err != nil {
		return err
	}
	if err := cmdutil.NeedArgs(stderr, fs, "csv and output path", 2); err != nil {
		return err
	}

	t, err := frame.ReadCSVFile(fs.Arg(0))
	if err != nil {
		return err
	}
	c, err := frame.Columns(t, "thrnum", "cost", "")
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}
	p, err := chart.ThreadScatter(c)
	if err != nil {
		return err
	}
	return chart.Save(p, chart.ThreadWidth, chart.ThreadHeight, *dpi, fs.Arg(1))
}
