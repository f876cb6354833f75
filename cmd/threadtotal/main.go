// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Threadtotal plots the mean elapsed time of a multi-threaded run
// against the number of threads.
//
// Usage:
//
//	threadtotal [options] latency.csv outprefix
//
// The input CSV has one column per thread count, named by the count,
// and one row per run. Threadtotal prints the per-thread means and
// writes outprefix.png covering the first -split thread counts. When
// the input has more thread counts than that, it also writes
// outprefix2.png covering all of them, with a marker at -split.
package main

import (
	"io"
	"os"

	"github.com/hybridlru/benchviz/chart"
	"github.com/hybridlru/benchviz/frame"
	"github.com/hybridlru/benchviz/internal/cmdutil"
	"github.com/hybridlru/benchviz/report"
)

func main() {
	cmdutil.Main("threadtotal", threadtotal)
}

const yLabel = "Time Elapsed (ms)"

func threadtotal(stdout, stderr io.Writer, args []string) error {
	fs := cmdutil.NewFlagSet("threadtotal", "[options] latency.csv outprefix", stderr)
	split := fs.Int("split", frame.DefaultSplit, "draw a second, full chart past `n` threads")
	dpi := fs.Int("dpi", chart.DPI, "output resolution in `dots` per inch")
	htmlOut := fs.String("html", "", "also write the per-thread means as an HTML table to `file`")
	if err := cmdutil.Parse(fs, args); err != nil {
		return err
	}
	if err := cmdutil.NeedArgs(stderr, fs, "csv and output path", 2); err != nil {
		return err
	}
	output := fs.Arg(1)

	all, err := frame.LoadMeans(fs.Arg(0), "cost")
	if err != nil {
		return err
	}
	head, more := all.Split(*split)

	if err := report.Text(stdout, "head", head); err != nil {
		return err
	}
	if err := report.Text(stdout, "all", all); err != nil {
		return err
	}

	if err := draw(head, 0, *dpi, output+".png"); err != nil {
		return err
	}
	if more {
		if err := draw(all, float64(*split), *dpi, output+"2.png"); err != nil {
			return err
		}
	}

	if *htmlOut != "" {
		f, err := os.Create(*htmlOut)
		if err != nil {
			return err
		}
		if err := report.HTML(f, yLabel, all); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return nil
}

func draw(c *frame.Curve, marker float64, dpi int, path string) error {
	p, err := chart.ThreadChart([]*frame.Curve{c}, chart.ThreadOptions{YLabel: yLabel, Marker: marker})
	if err != nil {
		return err
	}
	return chart.Save(p, chart.ThreadWidth, chart.ThreadHeight, dpi, path)
}
