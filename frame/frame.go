// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame loads benchmark CSV files into column-oriented
// tables and derives the per-thread curves and hit/miss rows that the
// chart renderers consume.
//
// Tables are go-gg tables. Cells are coerced when the table is built:
// a column whose cells all parse as integers is an []int, one whose
// cells all parse as floats is a []float64, and anything else stays a
// []string.
package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
)

// DefaultSplit is the thread count after which the thread charts are
// drawn a second time over the full range.
const DefaultSplit = 12

// ReadCSV reads a CSV document whose first record is the header.
// Every later record must have as many fields as the header, and
// header names must be unique. Cells are trimmed of surrounding
// spaces; a blank cell is a missing value and reads as NaN.
func ReadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no header record")
	}
	header := records[0]
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		header[i] = name
	}
	rows := records[1:]
	for _, row := range rows {
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				cell = "NaN"
			}
			row[i] = cell
		}
	}
	return table.TableFromStrings(header, rows, true), nil
}

// ReadCSVFile is like ReadCSV, but reads the named file. Errors are
// prefixed with path.
func ReadCSVFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Floats returns column col of t as float64s.
func Floats(t *table.Table, col string) ([]float64, error) {
	switch c := t.Column(col).(type) {
	case nil:
		return nil, fmt.Errorf("missing column %q", col)
	case []float64:
		return c, nil
	case []int:
		out := make([]float64, len(c))
		for i, v := range c {
			out[i] = float64(v)
		}
		return out, nil
	case []string:
		if len(c) == 0 {
			return []float64{}, nil
		}
		return nil, fmt.Errorf("column %q is not numeric", col)
	default:
		return nil, fmt.Errorf("column %q has unsupported type %T", col, c)
	}
}

// Strings returns column col of t formatted as strings.
func Strings(t *table.Table, col string) ([]string, error) {
	switch c := t.Column(col).(type) {
	case nil:
		return nil, fmt.Errorf("missing column %q", col)
	case []string:
		return c, nil
	case []int:
		out := make([]string, len(c))
		for i, v := range c {
			out[i] = fmt.Sprint(v)
		}
		return out, nil
	case []float64:
		out := make([]string, len(c))
		for i, v := range c {
			out[i] = fmt.Sprint(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("column %q has unsupported type %T", col, c)
	}
}
