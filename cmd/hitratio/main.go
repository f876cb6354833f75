// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Hitratio draws the hits and misses of each key distribution as
// stacked bars, labelled with the hit ratio.
//
// Usage:
//
//	hitratio [-dpi n] different_dist.csv out.png
//
// The input CSV has the columns dist, hits, misses and hit-ratio.
package main

import (
	"fmt"
	"io"

	"github.com/hybridlru/benchviz/chart"
	"github.com/hybridlru/benchviz/frame"
	"github.com/hybridlru/benchviz/internal/cmdutil"
)

func main() {
	cmdutil.Main("hitratio", hitratio)
}

func hitratio(stdout, stderr io.Writer, args []string) error {
	fs := cmdutil.NewFlagSet("hitratio", "[options] data.csv out.png", stderr)
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
	dists, err := frame.HitMiss(t)
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}
	opts := chart.HitRatioOptions()
	p, err := chart.HitMissBars(dists, opts)
	if err != nil {
		return err
	}
	return chart.Save(p, opts.Width, opts.Height, *dpi, fs.Arg(1))
}
