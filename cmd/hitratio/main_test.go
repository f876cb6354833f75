// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hybridlru/benchviz/internal/cmdutil"
)

func TestUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"data.csv"}} {
		var stdout, stderr bytes.Buffer
		err := hitratio(&stdout, &stderr, args)
		if !errors.Is(err, cmdutil.ErrUsage) {
			t.Fatalf("hitratio %v: got %v, want usage error", args, err)
		}
		want := fmt.Sprintf("hitratio: provide csv and output path!, need 2 args, you have provided %d\n", len(args))
		if stderr.String() != want {
			t.Errorf("hitratio %v: stderr %q, want %q", args, stderr.String(), want)
		}
	}
}

func TestHitRatio(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pics", "dist.png")
	var stdout, stderr bytes.Buffer
	if err := hitratio(&stdout, &stderr, []string{"-dpi", "40", "testdata/different_dist.csv", out}); err != nil {
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
	if cfg.Width != 90 || cfg.Height != 109 {
		t.Errorf("image is %dx%d, want 90x109", cfg.Width, cfg.Height)
	}
}

func TestMissingColumn(t *testing.T) {
	in := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(in, []byte("dist,hits\nzipf,1\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	err := hitratio(&stdout, &stderr, []string{in, filepath.Join(t.TempDir(), "out.png")})
	if err == nil || !strings.Contains(err.Error(), `missing column "misses"`) || !strings.Contains(err.Error(), in) {
		t.Errorf("got %v, want missing column error naming %s", err, in)
	}
}
