// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hybridlru/benchviz/internal/cmdutil"
)

var inputs = []string{"testdata/naive.csv", "testdata/sharded.csv", "testdata/hybrid.csv"}

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := threadcompare(&stdout, &stderr, inputs)
	if !errors.Is(err, cmdutil.ErrUsage) {
		t.Fatalf("got %v, want usage error", err)
	}
	if want := "threadcompare: provide csv and output path!, need 6 args, you have provided 3\n"; stderr.String() != want {
		t.Errorf("stderr %q, want %q", stderr.String(), want)
	}
}

func TestBadThroughputFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := append(append([]string(nil), inputs...), filepath.Join(t.TempDir(), "out"), "Latency (ms)", "yes")
	err := threadcompare(&stdout, &stderr, args)
	if err == nil || errors.Is(err, cmdutil.ErrUsage) {
		t.Errorf("got %v, want parse error", err)
	}
}

func TestOutputs(t *testing.T) {
	for _, test := range []struct {
		name  string
		flags []string
		tput  string
		want  []string
		skip  []string
	}{
		{
			name: "latency only",
			tput: "0",
			want: []string{"_latency.png", "_timecost2.png"},
			skip: []string{"_throughput.png", "_throughput2.png"},
		},
		{
			name: "throughput",
			tput: "1",
			want: []string{"_latency.png", "_throughput.png", "_timecost2.png", "_throughput2.png"},
		},
		{
			name:  "no split",
			flags: []string{"-split", "14"},
			tput:  "1",
			want:  []string{"_latency.png", "_throughput.png"},
			skip:  []string{"_timecost2.png", "_throughput2.png"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			prefix := filepath.Join(t.TempDir(), "out")
			args := append([]string{"-dpi", "20"}, test.flags...)
			args = append(args, inputs...)
			args = append(args, prefix, "Latency (ms)", test.tput)
			var stdout, stderr bytes.Buffer
			if err := threadcompare(&stdout, &stderr, args); err != nil {
				t.Fatal(err)
			}
			for _, suffix := range test.want {
				if _, err := os.Stat(prefix + suffix); err != nil {
					t.Errorf("%s%s not written: %v", prefix, suffix, err)
				}
			}
			for _, suffix := range test.skip {
				if _, err := os.Stat(prefix + suffix); err == nil {
					t.Errorf("%s%s written unexpectedly", prefix, suffix)
				}
			}
		})
	}
}

func TestCurveLabel(t *testing.T) {
	if got := curveLabel("results/naive_latency.csv"); got != "naive_latency" {
		t.Errorf("curveLabel = %q, want naive_latency", got)
	}
}
