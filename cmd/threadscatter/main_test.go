// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hybridlru/benchviz/internal/cmdutil"
)

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := threadscatter(&stdout, &stderr, []string{"naive.csv"})
	if !errors.Is(err, cmdutil.ErrUsage) {
		t.Fatalf("got %v, want usage error", err)
	}
	if want := "threadscatter: provide csv and output path!, need 2 args, you have provided 1\n"; stderr.String() != want {
		t.Errorf("stderr %q, want %q", stderr.String(), want)
	}
}

func TestThreadScatter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scatter.png")
	var stdout, stderr bytes.Buffer
	if err := threadscatter(&stdout, &stderr, []string{"-dpi", "20", "testdata/naive.csv", out}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 || cfg.Height != 120 {
		t.Errorf("image is %dx%d, want 200x120", cfg.Width, cfg.Height)
	}
}

func TestNotNumeric(t *testing.T) {
	in := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(in, []byte("thrnum,cost\n1,fast\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if err := threadscatter(&stdout, &stderr, []string{in, filepath.Join(t.TempDir(), "out.png")}); err == nil {
		t.Error("non-numeric cost column accepted")
	}
}
