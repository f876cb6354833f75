// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/vec"
	"github.com/hybridlru/benchviz/frame"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LockCostSize is the width and height of the lock cost chart.
const LockCostSize = 5 * vg.Inch

// Smoothing parameters of the lock cost regression: a locally linear
// fit over two thirds of the samples.
const (
	loessDegree  = 1
	loessSpan    = 2.0 / 3
	loessSamples = 100
)

// LockCostSamples returns the measured cost of taking the cache lock
// against the number of threads contending for it.
func LockCostSamples() *frame.Curve {
	threads := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 20, 30, 40, 50}
	cost := []float64{
		3.9, 6.41, 8.5, 8.42, 7.82, 11.68, 11.26, 11.72, 10.86,
		11.11, 11.52, 13.22, 13.04, 12.69, 12.04, 12.42, 14, 11.43,
	}
	c := &frame.Curve{Label: "lockcost", Points: make([]frame.Point, len(threads))}
	for i := range threads {
		c.Points[i] = frame.Point{Threads: threads[i], Value: cost[i]}
	}
	return c
}

// LockCost plots lock cost samples with a LOESS regression line and a
// marker at frame.DefaultSplit threads.
func LockCost(c *frame.Curve) (*plot.Plot, error) {
	if c.Len() < 2 {
		return nil, fmt.Errorf("need at least 2 samples to fit, have %d", c.Len())
	}
	p := plot.New()
	darkgrid(p)
	p.X.Label.Text = "thrnum"
	p.Y.Label.Text = c.Label

	s, err := plotter.NewScatter(c)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = Color(0)
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Shape = draw.CircleGlyph{}

	smooth, err := loessLine(c)
	if err != nil {
		return nil, err
	}
	smooth.LineStyle.Color = Color(1)
	smooth.LineStyle.Width = vg.Points(2)

	p.Add(s, smooth, newVLine(frame.DefaultSplit))
	return p, nil
}

func loessLine(c *frame.Curve) (*plotter.Line, error) {
	xs := make([]float64, c.Len())
	for i := range xs {
		xs[i], _ = c.XY(i)
	}
	f := fit.LOESS(xs, c.Values(), loessDegree, loessSpan)

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	pts := make(plotter.XYs, loessSamples)
	for i, x := range vec.Linspace(lo, hi, loessSamples) {
		pts[i] = plotter.XY{X: x, Y: f(x)}
	}
	return plotter.NewLine(pts)
}
