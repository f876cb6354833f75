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

func checkSize(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != w || cfg.Height != h {
		t.Errorf("image is %dx%d, want %dx%d", cfg.Width, cfg.Height, w, h)
	}
}

func TestBuiltin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lockcost.png")
	var stdout, stderr bytes.Buffer
	if err := lockcost(&stdout, &stderr, []string{"-o", out, "-dpi", "20"}); err != nil {
		t.Fatal(err)
	}
	checkSize(t, out, 100, 100)
}

func TestCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lockcost.png")
	var stdout, stderr bytes.Buffer
	if err := lockcost(&stdout, &stderr, []string{"-o", out, "-dpi", "20", "testdata/lockcost.csv"}); err != nil {
		t.Fatal(err)
	}
	checkSize(t, out, 100, 100)
}

func TestTooManyArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := lockcost(&stdout, &stderr, []string{"a.csv", "b.csv"})
	if !errors.Is(err, cmdutil.ErrUsage) {
		t.Errorf("got %v, want usage error", err)
	}
}

func TestBadDPI(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lockcost.png")
	var stdout, stderr bytes.Buffer
	if err := lockcost(&stdout, &stderr, []string{"-o", out, "-dpi", "0"}); err == nil {
		t.Error("-dpi 0 accepted")
	}
}
