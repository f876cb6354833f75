// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders benchmark tables as PNG charts using gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the default resolution of saved charts.
const DPI = 300

// deep is the default colour cycle of the themed charts.
var deep = []color.Color{
	color.NRGBA{0x4c, 0x72, 0xb0, 0xff},
	color.NRGBA{0xdd, 0x84, 0x52, 0xff},
	color.NRGBA{0x55, 0xa8, 0x68, 0xff},
	color.NRGBA{0xc4, 0x4e, 0x52, 0xff},
	color.NRGBA{0x81, 0x72, 0xb3, 0xff},
	color.NRGBA{0x93, 0x78, 0x60, 0xff},
	color.NRGBA{0xda, 0x8b, 0xc3, 0xff},
	color.NRGBA{0x8c, 0x8c, 0x8c, 0xff},
	color.NRGBA{0xcc, 0xb9, 0x74, 0xff},
	color.NRGBA{0x64, 0xb5, 0xcd, 0xff},
}

// tab10 is the colour cycle of the unthemed charts.
var tab10 = []color.Color{
	color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
	color.NRGBA{0xff, 0x7f, 0x0e, 0xff},
	color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.NRGBA{0xd6, 0x27, 0x28, 0xff},
}

var (
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
	panel = color.NRGBA{0xea, 0xea, 0xf2, 0xff}
)

// Color returns the i'th colour of the themed colour cycle.
func Color(i int) color.Color {
	return deep[i%len(deep)]
}

// Save draws p onto a width × height PNG canvas at dpi dots per inch
// and writes it to path, creating missing parent directories. dpi
// must be positive.
func Save(p *plot.Plot, width, height vg.Length, dpi int, path string) error {
	if dpi <= 0 {
		return fmt.Errorf("invalid resolution %d dpi", dpi)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	}
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// darkgrid gives p a grey data area crossed by white grid lines.
func darkgrid(p *plot.Plot) {
	p.Add(background{panel})

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.White
	grid.Vertical.Width = vg.Points(1)
	grid.Vertical.Dashes = nil
	grid.Horizontal.Color = color.White
	grid.Horizontal.Width = vg.Points(1)
	grid.Horizontal.Dashes = nil
	p.Add(grid)

	p.X.LineStyle.Width = 0
	p.Y.LineStyle.Width = 0
	p.X.Tick.LineStyle.Width = 0
	p.Y.Tick.LineStyle.Width = 0
}

// background fills the data area of a plot.
type background struct {
	clr color.Color
}

func (b background) Plot(c draw.Canvas, _ *plot.Plot) {
	c.FillPolygon(b.clr, []vg.Point{
		c.Min,
		{X: c.Max.X, Y: c.Min.Y},
		c.Max,
		{X: c.Min.X, Y: c.Max.Y},
	})
}

// vline marks x with a vertical line across the whole data area. It
// does not contribute to the data range.
type vline struct {
	x     float64
	style draw.LineStyle
}

func newVLine(x float64) vline {
	return vline{x: x, style: draw.LineStyle{
		Color: color.NRGBA{0, 0, 0, 0x4c},
		Width: vg.Points(1.5),
	}}
}

func (l vline) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	x := trX(l.x)
	if !c.ContainsX(x) {
		return
	}
	c.StrokeLine2(l.style, x, c.Min.Y, x, c.Max.Y)
}

// threadTicks labels every thread count from 1 to n.
func threadTicks(n int) plot.Ticker {
	ticks := make([]plot.Tick, n)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: fmt.Sprint(i + 1)}
	}
	return plot.ConstantTicks(ticks)
}
