// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdutil holds the argument handling shared by the benchviz
// commands.
package cmdutil

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// ErrUsage reports that a command was invoked with bad arguments. The
// usage message has already been printed when it is returned.
var ErrUsage = errors.New("usage")

// NeedArgs checks that fs has at least need positional arguments. If
// not, it prints
//
//	<prog>: provide <what>!, need <need> args, you have provided <n>
//
// to stderr and returns ErrUsage.
func NeedArgs(stderr io.Writer, fs *flag.FlagSet, what string, need int) error {
	if fs.NArg() >= need {
		return nil
	}
	fmt.Fprintf(stderr, "%s: provide %s!, need %d args, you have provided %d\n", fs.Name(), what, need, fs.NArg())
	return ErrUsage
}

// NewFlagSet returns a flag set named prog that reports errors to
// stderr instead of exiting.
func NewFlagSet(prog, usage string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s %s\n", prog, usage)
		fs.PrintDefaults()
	}
	return fs
}

// Parse parses args into fs, mapping flag errors to ErrUsage.
func Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	return nil
}

// Main runs cmd with the process's arguments and standard streams,
// exiting 2 on a usage error and 1 on any other error.
func Main(prog string, cmd func(stdout, stderr io.Writer, args []string) error) {
	log.SetPrefix(prog + ": ")
	log.SetFlags(0)
	err := cmd(os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, ErrUsage):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}
