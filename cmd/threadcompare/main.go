// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Threadcompare plots the mean latency, and optionally the throughput,
// of three cache implementations against the number of threads.
//
// Usage:
//
//	threadcompare [options] a.csv b.csv c.csv outprefix ylabel drawThroughput
//
// Each input CSV has one column per thread count and one row per run,
// as read by threadtotal. Curves are labelled with the input file
// names. Threadcompare writes outprefix_latency.png and, if
// drawThroughput is non-zero, outprefix_throughput.png, covering the
// first -split thread counts. When the first input has more thread
// counts than that, it also writes outprefix_timecost2.png and
// outprefix_throughput2.png covering all of them.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hybridlru/benchviz/chart"
	"github.com/hybridlru/benchviz/frame"
	"github.com/hybridlru/benchviz/internal/cmdutil"
	"github.com/hybridlru/benchviz/report"
)

func main() {
	cmdutil.Main("threadcompare", threadcompare)
}

const throughputLabel = "Throughput (MQPS)"

func threadcompare(stdout, stderr io.Writer, args []string) error {
	fs := cmdutil.NewFlagSet("threadcompare", "[options] a.csv b.csv c.csv outprefix ylabel drawThroughput", stderr)
	split := fs.Int("split", frame.DefaultSplit, "draw second, full charts past `n` threads")
	dpi := fs.Int("dpi", chart.DPI, "output resolution in `dots` per inch")
	htmlOut := fs.String("html", "", "also write the per-thread means as an HTML table to `file`")
	if err := cmdutil.Parse(fs, args); err != nil {
		return err
	}
	if err := cmdutil.NeedArgs(stderr, fs, "csv and output path", 6); err != nil {
		return err
	}
	output, yLabel := fs.Arg(3), fs.Arg(4)
	drawThroughput, err := strconv.Atoi(fs.Arg(5))
	if err != nil {
		return fmt.Errorf("drawThroughput: %w", err)
	}

	var all []*frame.Curve
	for _, path := range fs.Args()[:3] {
		c, err := frame.LoadMeans(path, curveLabel(path))
		if err != nil {
			return err
		}
		all = append(all, c)
	}
	head := make([]*frame.Curve, len(all))
	for i, c := range all {
		head[i] = c.Head(*split)
	}
	_, more := all[0].Split(*split)

	g := group{dpi: *dpi, yLabel: yLabel, throughput: drawThroughput != 0}
	if err := g.draw(head, output+"_latency.png", output+"_throughput.png"); err != nil {
		return err
	}
	if more {
		if err := g.draw(all, output+"_timecost2.png", output+"_throughput2.png"); err != nil {
			return err
		}
	}

	if *htmlOut != "" {
		f, err := os.Create(*htmlOut)
		if err != nil {
			return err
		}
		if err := report.HTML(f, yLabel, all...); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return nil
}

// curveLabel returns the base name of path without its extension.
func curveLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// A group draws the latency and throughput charts of a set of curves.
type group struct {
	dpi        int
	yLabel     string
	throughput bool
}

func (g group) draw(curves []*frame.Curve, latencyPath, throughputPath string) error {
	p, err := chart.ThreadChart(curves, chart.ThreadOptions{YLabel: g.yLabel, Lines: true})
	if err != nil {
		return err
	}
	if err := chart.Save(p, chart.ThreadWidth, chart.ThreadHeight, g.dpi, latencyPath); err != nil {
		return err
	}
	if !g.throughput {
		return nil
	}

	tput := make([]*frame.Curve, len(curves))
	for i, c := range curves {
		tput[i] = c.Throughput()
	}
	p, err = chart.ThreadChart(tput, chart.ThreadOptions{YLabel: throughputLabel, Lines: true})
	if err != nil {
		return err
	}
	return chart.Save(p, chart.ThreadWidth, chart.ThreadHeight, g.dpi, throughputPath)
}
