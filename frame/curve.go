// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// A Point is one measurement at a given thread count.
type Point struct {
	Threads float64
	Value   float64
}

// A Curve is a sequence of points ordered by thread count, as read
// from the input. Curve implements gonum's plotter.XYer.
type Curve struct {
	Label  string
	Points []Point
}

// Len returns the number of points in c.
func (c *Curve) Len() int { return len(c.Points) }

// XY returns the thread count and value of point i.
func (c *Curve) XY(i int) (x, y float64) {
	p := c.Points[i]
	return p.Threads, p.Value
}

// Values returns the values of c in order.
func (c *Curve) Values() []float64 {
	vs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		vs[i] = p.Value
	}
	return vs
}

// Head returns a curve with the first n points of c, or all of them if
// c has fewer than n.
func (c *Curve) Head(n int) *Curve {
	if n > len(c.Points) {
		n = len(c.Points)
	}
	if n < 0 {
		n = 0
	}
	return &Curve{Label: c.Label, Points: c.Points[:n:n]}
}

// Split returns the first n points of c and reports whether c has
// more than n points, in which case the full curve deserves a chart
// of its own.
func (c *Curve) Split(n int) (head *Curve, more bool) {
	return c.Head(n), len(c.Points) > n
}

// Throughput converts a curve of per-run latencies in milliseconds to
// throughput: each value v becomes (1e6 / v) * 1000.
func (c *Curve) Throughput() *Curve {
	out := &Curve{Label: c.Label, Points: make([]Point, len(c.Points))}
	for i, p := range c.Points {
		out.Points[i] = Point{Threads: p.Threads, Value: (1000000 / p.Value) * 1000}
	}
	return out
}

// Table returns c as a two column table named "threads" and, for the
// values, c's label or "cost" if it has none.
func (c *Curve) Table() *table.Table {
	name := c.Label
	if name == "" {
		name = "cost"
	}
	xs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.Threads
	}
	return new(table.Builder).Add("threads", xs).Add(name, c.Values()).Done()
}

// mean returns the mean of the non-NaN values of xs, or NaN if there
// are none.
func mean(xs []float64) float64 {
	vs := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			vs = append(vs, x)
		}
	}
	if len(vs) == 0 {
		return math.NaN()
	}
	return stats.Mean(vs)
}

// Means reduces a wide table, one column per thread count and one row
// per run, to the curve of column means. Missing values are skipped. The thread count of a column
// is its name if that is a number and its 1-based position otherwise.
func Means(t *table.Table, label string) (*Curve, error) {
	if t.Len() == 0 {
		return nil, errors.New("no rows to average")
	}
	c := &Curve{Label: label}
	for i, col := range t.Columns() {
		xs, err := Floats(t, col)
		if err != nil {
			return nil, err
		}
		threads, err := strconv.ParseFloat(col, 64)
		if err != nil {
			threads = float64(i + 1)
		}
		c.Points = append(c.Points, Point{Threads: threads, Value: mean(xs)})
	}
	return c, nil
}

// Columns builds a curve with one point per row of t, taking the
// thread count from column xcol and the value from column ycol. Rows
// missing either value are dropped.
func Columns(t *table.Table, xcol, ycol, label string) (*Curve, error) {
	xs, err := Floats(t, xcol)
	if err != nil {
		return nil, err
	}
	ys, err := Floats(t, ycol)
	if err != nil {
		return nil, err
	}
	c := &Curve{Label: label, Points: make([]Point, 0, len(xs))}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		c.Points = append(c.Points, Point{Threads: xs[i], Value: ys[i]})
	}
	return c, nil
}

// LoadMeans reads a wide CSV file and returns its column means.
func LoadMeans(path, label string) (*Curve, error) {
	t, err := ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Means(t, label)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
