// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hybridlru/benchviz/frame"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BarOptions controls HitMissBars.
type BarOptions struct {
	Title  string
	YLabel string

	// HideYTicks removes the y axis tick marks and labels.
	HideYTicks bool

	// RatioLabels writes each distribution's hit ratio inside its
	// hits bar, RatioOffset below the top of the bar.
	RatioLabels bool
	RatioOffset float64

	HitColor, MissColor color.Color
	BarWidth            vg.Length

	// Width and Height are the intended canvas size.
	Width, Height vg.Length
}

// HitRatioOptions is the compact layout with ratio labels.
func HitRatioOptions() BarOptions {
	return BarOptions{
		YLabel:      "Hit Ratios",
		HideYTicks:  true,
		RatioLabels: true,
		RatioOffset: 1e6 * 1.3,
		HitColor:    tab10[0],
		MissColor:   tab10[1],
		BarWidth:    vg.Points(24),
		Width:       2.25 * vg.Inch,
		Height:      2.725 * vg.Inch,
	}
}

// NaiveDistOptions is the titled red and blue layout.
func NaiveDistOptions() BarOptions {
	return BarOptions{
		Title:     "Hits/Misses",
		YLabel:    "%",
		HitColor:  red,
		MissColor: blue,
		BarWidth:  vg.Points(40),
		Width:     4 * vg.Inch,
		Height:    3 * vg.Inch,
	}
}

// HitMissBars draws one bar per distribution: hits at the bottom with
// misses stacked on top.
func HitMissBars(dists []frame.Dist, opts BarOptions) (*plot.Plot, error) {
	if len(dists) == 0 {
		return nil, errors.New("no distributions to plot")
	}
	names := make([]string, len(dists))
	hits := make(plotter.Values, len(dists))
	misses := make(plotter.Values, len(dists))
	for i, d := range dists {
		names[i] = d.Name
		hits[i] = d.Hits
		misses[i] = d.Misses
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Y.Label.Text = opts.YLabel

	hb, err := plotter.NewBarChart(hits, opts.BarWidth)
	if err != nil {
		return nil, err
	}
	hb.Color = opts.HitColor
	hb.LineStyle.Width = 0

	mb, err := plotter.NewBarChart(misses, opts.BarWidth)
	if err != nil {
		return nil, err
	}
	mb.Color = opts.MissColor
	mb.LineStyle.Width = 0
	mb.StackOn(hb)

	p.Add(hb, mb)
	p.Legend.Add("Hits", hb)
	p.Legend.Add("Misses", mb)
	p.Legend.Top = true

	if opts.RatioLabels {
		xys := make(plotter.XYs, len(dists))
		labels := make([]string, len(dists))
		for i, d := range dists {
			xys[i] = plotter.XY{X: float64(i), Y: d.Hits - opts.RatioOffset}
			labels[i] = fmt.Sprintf("%.3f", d.Ratio)
		}
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return nil, err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].Color = color.White
			l.TextStyle[i].XAlign = draw.XCenter
			l.TextStyle[i].YAlign = draw.YBottom
			l.TextStyle[i].Font.Size = 10
		}
		p.Add(ratioLabels{l})
	}

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if opts.HideYTicks {
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
	}
	return p, nil
}

// ratioLabels draws its labels without contributing to the data
// range; the bars alone decide the axis scale.
type ratioLabels struct {
	l *plotter.Labels
}

func (r ratioLabels) Plot(c draw.Canvas, p *plot.Plot) {
	r.l.Plot(c, p)
}
