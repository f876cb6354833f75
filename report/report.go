// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report prints thread curves as text or HTML tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/google/safehtml/template"
	"github.com/hybridlru/benchviz/frame"
)

// Text prints title on a line of its own followed by c as a two
// column table.
func Text(w io.Writer, title string, c *frame.Curve) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	return table.Fprint(w, c.Table(), "%g", "%.3f")
}

const htmlTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.benchviz { border-collapse: collapse; }
.benchviz th { border-bottom: 1px solid #666; padding: 0em 1em; }
.benchviz td { text-align: right; padding: 0em 1em; }
</style>
</head>
<body>
<table class="benchviz">
<thead><tr><th>threads</th>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr><td>{{.Threads}}</td>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))

type htmlRow struct {
	Threads string
	Cells   []string
}

type htmlData struct {
	Title   string
	Columns []string
	Rows    []htmlRow
}

// HTML writes an HTML page with one row per thread count and one
// column per curve. Cells for thread counts a curve lacks are empty.
func HTML(w io.Writer, title string, curves ...*frame.Curve) error {
	d := htmlData{Title: title}
	values := make(map[float64][]string)
	var threads []float64
	for i, c := range curves {
		label := c.Label
		if label == "" {
			label = fmt.Sprintf("curve %d", i+1)
		}
		d.Columns = append(d.Columns, label)
		for _, p := range c.Points {
			cells, ok := values[p.Threads]
			if !ok {
				cells = make([]string, len(curves))
				threads = append(threads, p.Threads)
			}
			cells[i] = strconv.FormatFloat(p.Value, 'f', 3, 64)
			values[p.Threads] = cells
		}
	}
	sort.Float64s(threads)
	for _, t := range threads {
		d.Rows = append(d.Rows, htmlRow{
			Threads: strconv.FormatFloat(t, 'g', -1, 64),
			Cells:   values[t],
		})
	}
	return htmlTmpl.Execute(w, d)
}
