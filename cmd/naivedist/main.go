// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Naivedist draws the hit/miss bars of the naive LRU cache from a
// benchmark results directory.
//
// Usage:
//
//	naivedist [-o out.png] [-dpi n] dir
//
// It reads dir/different_dist_on_naive.csv, or the older
// dir/differnent_dist_on_naive.csv if the former does not exist.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hybridlru/benchviz/chart"
	"github.com/hybridlru/benchviz/frame"
	"github.com/hybridlru/benchviz/internal/cmdutil"
)

var inputNames = []string{
	"different_dist_on_naive.csv",
	"differnent_dist_on_naive.csv",
}

func main() {
	cmdutil.Main("naivedist", naivedist)
}

func naivedist(stdout, stderr io.Writer, args []string) error {
	flags := cmdutil.NewFlagSet("naivedist", "[options] dir", stderr)
	out := flags.String("o", filepath.Join("pics", "different_dist_on_naive.png"), "write the chart to `file`")
	dpi := flags.Int("dpi", chart.DPI, "output resolution in `dots` per inch")
	if err := cmdutil.Parse(flags, args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		fmt.Fprintf(stderr, "naivedist: provide %s path!\n", inputNames[0])
		return cmdutil.ErrUsage
	}

	path, err := findInput(flags.Arg(0))
	if err != nil {
		return err
	}
	t, err := frame.ReadCSVFile(path)
	if err != nil {
		return err
	}
	dists, err := frame.HitMiss(t)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	opts := chart.NaiveDistOptions()
	p, err := chart.HitMissBars(dists, opts)
	if err != nil {
		return err
	}
	return chart.Save(p, opts.Width, opts.Height, *dpi, *out)
}

// findInput returns the first of inputNames present in dir.
func findInput(dir string) (string, error) {
	for _, name := range inputNames {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%s: no %s", dir, inputNames[0])
}
