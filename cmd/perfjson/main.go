// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Perfjson converts the text output of perf script to JSON.
//
// Usage:
//
//	perfjson [-db file.sqlite] perf.txt out.json
//
// Each non-empty line that does not start with # becomes an object
// with the fields time, event and details: the first two
// whitespace-separated tokens and the rest of the line. Lines with a
// single token are reported and skipped.
//
// With -db, perfjson also archives the events as a new trace in the
// named sqlite3 database.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hybridlru/benchviz/eventdb"
	_ "github.com/hybridlru/benchviz/eventdb/sqlite3"
	"github.com/hybridlru/benchviz/internal/cmdutil"
	"github.com/hybridlru/benchviz/perfscript"
)

func main() {
	cmdutil.Main("perfjson", perfjson)
}

func perfjson(stdout, stderr io.Writer, args []string) error {
	fs := cmdutil.NewFlagSet("perfjson", "[options] perf.txt out.json", stderr)
	dbPath := fs.String("db", "", "also archive the events in the sqlite3 database `file`")
	if err := cmdutil.Parse(fs, args); err != nil {
		return err
	}
	if err := cmdutil.NeedArgs(stderr, fs, "perf script log and output path", 2); err != nil {
		return err
	}
	input, output := fs.Arg(0), fs.Arg(1)

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()
	events, errs, err := perfscript.ReadAll(f, input)
	if err != nil {
		return err
	}
	for _, e := range errs {
		fmt.Fprintln(stderr, e)
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := perfscript.WriteJSON(out, events); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if *dbPath != "" {
		return archive(context.Background(), *dbPath, input, events)
	}
	return nil
}

func archive(ctx context.Context, dbPath, name string, events []perfscript.Event) error {
	db, err := eventdb.OpenSQL("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("%s: %w", dbPath, err)
	}
	defer db.Close()
	tr, err := db.NewTrace(ctx, name)
	if err != nil {
		return err
	}
	return tr.InsertEvents(ctx, events)
}
