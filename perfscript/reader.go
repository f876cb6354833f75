// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfscript reads the text output of "perf script" and
// converts it to event records.
//
// Each line that is neither blank nor a comment is one event. Its
// first whitespace-separated field is the time, the second is the
// event, and the remaining fields, joined by single spaces, are the
// details.
package perfscript

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"
)

// An Event is one line of perf script output.
type Event struct {
	Time    string `json:"time"`
	Event   string `json:"event"`
	Details string `json:"details"`
}

// A Record is either an *Event or a *SyntaxError.
type Record interface {
	isRecord()
}

func (*Event) isRecord()       {}
func (*SyntaxError) isRecord() {}

// A SyntaxError represents a line that could not be split into an
// event.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads perf script output one event at a time.
//
// Its API is modeled on bufio.Scanner.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	rec      Record
	err      error
}

// maxLine bounds the length of a single line. Call graphs in perf
// script output can be long, so this only guards against unbounded
// input.
const maxLine = math.MaxInt32

// NewReader returns a Reader that reads from r. fileName is used in
// error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLine)
	s.Split(scanLines)
	return &Reader{s: s, fileName: fileName}
}

// scanLines is bufio.ScanLines, except that a lone \r also ends a
// line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell \r from \r\n.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// isSpace reports whether r separates fields. Besides Unicode white
// space this includes the file, group, record and unit separators.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= 0x1c && r <= 0x1f
}

// Scan advances to the next record and reports whether there is one.
// When Scan returns false, Err reports any I/O error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := r.s.Bytes()
		if len(bytes.TrimFunc(line, isSpace)) == 0 || line[0] == '#' {
			continue
		}
		r.rec = r.parseLine(string(line))
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line+1, err)
	}
	r.rec = nil
	return false
}

func (r *Reader) parseLine(line string) Record {
	fields := strings.FieldsFunc(line, isSpace)
	if len(fields) < 2 {
		return &SyntaxError{r.fileName, r.line, "want at least a time and an event field"}
	}
	return &Event{
		Time:    fields[0],
		Event:   fields[1],
		Details: strings.Join(fields[2:], " "),
	}
}

// Record returns the record read by the last call to Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first I/O error encountered by Scan.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every record from r. It returns the events in input
// order and, separately, the lines that could not be parsed.
func ReadAll(r io.Reader, fileName string) ([]Event, []*SyntaxError, error) {
	events := []Event{}
	var bad []*SyntaxError
	pr := NewReader(r, fileName)
	for pr.Scan() {
		switch rec := pr.Record().(type) {
		case *Event:
			events = append(events, *rec)
		case *SyntaxError:
			bad = append(bad, rec)
		}
	}
	return events, bad, pr.Err()
}
