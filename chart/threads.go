// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"

	"github.com/hybridlru/benchviz/frame"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Canvas size of the thread charts.
const (
	ThreadWidth  = 10 * vg.Inch
	ThreadHeight = 6 * vg.Inch
)

// pointRadius approximates a 50 pt² marker.
var pointRadius = vg.Points(4)

// ThreadOptions controls ThreadChart.
type ThreadOptions struct {
	XLabel string // "Number of Threads" if empty
	YLabel string

	// Lines joins the points of each curve.
	Lines bool

	// Marker, if positive, draws a faint vertical line at that
	// thread count.
	Marker float64
}

// ThreadChart plots each curve as points over thread count, in the
// themed colour cycle. Curves with labels get a legend entry when
// there is more than one curve.
func ThreadChart(curves []*frame.Curve, opts ThreadOptions) (*plot.Plot, error) {
	if len(curves) == 0 {
		return nil, errors.New("no curves to plot")
	}
	p := plot.New()
	darkgrid(p)
	p.X.Label.Text = opts.XLabel
	if p.X.Label.Text == "" {
		p.X.Label.Text = "Number of Threads"
	}
	p.Y.Label.Text = opts.YLabel

	n := 0
	for i, c := range curves {
		if c.Len() > n {
			n = c.Len()
		}
		s, err := plotter.NewScatter(c)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = Color(i)
		s.GlyphStyle.Radius = pointRadius
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		thumbs := []plot.Thumbnailer{s}

		if opts.Lines {
			l, err := plotter.NewLine(c)
			if err != nil {
				return nil, err
			}
			l.LineStyle.Color = Color(i)
			l.LineStyle.Width = vg.Points(1.5)
			p.Add(l)
			thumbs = append(thumbs, l)
		}
		if len(curves) > 1 && c.Label != "" {
			p.Legend.Add(c.Label, thumbs...)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true

	p.X.Tick.Marker = threadTicks(n)
	if opts.Marker > 0 {
		p.Add(newVLine(opts.Marker))
	}
	return p, nil
}

// ThreadScatter plots a thrnum/cost curve as red points.
func ThreadScatter(c *frame.Curve) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Thread Number"
	p.Y.Label.Text = "Time Elapsed (ms)"

	s, err := plotter.NewScatter(c)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = red
	s.GlyphStyle.Radius = pointRadius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	p.X.Tick.Marker = threadTicks(c.Len())
	return p, nil
}
