// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "github.com/aclements/go-gg/table"

// A Dist is the hit/miss outcome of one key distribution.
type Dist struct {
	Name   string
	Hits   float64
	Misses float64
	// Ratio is hits / (hits + misses).
	Ratio float64
}

// HitMiss returns the rows of a table with columns "dist", "hits" and
// "misses". The "hit-ratio" column is used when present; otherwise the
// ratio is computed.
func HitMiss(t *table.Table) ([]Dist, error) {
	names, err := Strings(t, "dist")
	if err != nil {
		return nil, err
	}
	hits, err := Floats(t, "hits")
	if err != nil {
		return nil, err
	}
	misses, err := Floats(t, "misses")
	if err != nil {
		return nil, err
	}
	var ratios []float64
	if t.Column("hit-ratio") != nil {
		if ratios, err = Floats(t, "hit-ratio"); err != nil {
			return nil, err
		}
	}

	dists := make([]Dist, len(names))
	for i, name := range names {
		d := Dist{Name: name, Hits: hits[i], Misses: misses[i]}
		if ratios != nil {
			d.Ratio = ratios[i]
		} else if total := d.Hits + d.Misses; total != 0 {
			d.Ratio = d.Hits / total
		}
		dists[i] = d
	}
	return dists, nil
}
