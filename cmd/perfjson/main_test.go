// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hybridlru/benchviz/eventdb"
	"github.com/hybridlru/benchviz/internal/cmdutil"
	"github.com/hybridlru/benchviz/internal/diff"
	"github.com/hybridlru/benchviz/perfscript"
)

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := perfjson(&stdout, &stderr, []string{"perf.txt"})
	if !errors.Is(err, cmdutil.ErrUsage) {
		t.Fatalf("got %v, want usage error", err)
	}
	if want := "perfjson: provide perf script log and output path!, need 2 args, you have provided 1\n"; stderr.String() != want {
		t.Errorf("stderr %q, want %q", stderr.String(), want)
	}
}

func TestGolden(t *testing.T) {
	out := filepath.Join(t.TempDir(), "perf.json")
	var stdout, stderr bytes.Buffer
	if err := perfjson(&stdout, &stderr, []string{"testdata/perf.txt", out}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile("testdata/perf.json")
	if err != nil {
		t.Fatal(err)
	}
	if d := diff.Diff(string(want), string(got)); d != "" {
		t.Errorf("JSON output differs from testdata/perf.json:\n%s", d)
	}
	if want := "testdata/perf.txt:12: want at least a time and an event field\n"; stderr.String() != want {
		t.Errorf("stderr %q, want %q", stderr.String(), want)
	}
}

func TestArchive(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "events.sqlite")
	var stdout, stderr bytes.Buffer
	if err := perfjson(&stdout, &stderr, []string{"-db", dbPath, "testdata/perf.txt", filepath.Join(dir, "perf.json")}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open("testdata/perf.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	want, _, err := perfscript.ReadAll(f, "perf.txt")
	if err != nil {
		t.Fatal(err)
	}

	db, err := eventdb.OpenSQL("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()
	if n, err := db.CountTraces(ctx); err != nil || n != 1 {
		t.Fatalf("CountTraces = %d, %v; want 1", n, err)
	}
	got, err := db.Events(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("archived events differ (-want +got):\n%s", d)
	}
}
