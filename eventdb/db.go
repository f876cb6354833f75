// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventdb archives parsed perf script events in a SQL
// database.
package eventdb

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/hybridlru/benchviz/perfscript"
)

// A DB holds archived traces. Its methods may be called from
// multiple goroutines; a Trace may not.
type DB struct {
	sql *sql.DB

	insertTrace *sql.Stmt
	insertEvent *sql.Stmt
}

// OpenSQL opens the archive in dataSourceName using the named
// database/sql driver, creating the Traces and Events tables if they
// are missing. sqlite3 has its own schema dialect; any other driver
// gets MySQL column types.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook arranges for hook to run on every *sql.DB that
// OpenSQL opens with driverName, before any table is created. Driver
// packages such as eventdb/sqlite3 call it from init.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl expands to the schema, one statement per semicolon.
// Its data is a map with the driver name set to true.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Traces (
	TraceID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Name VARCHAR(255)
);
CREATE TABLE IF NOT EXISTS Events (
	TraceID BIGINT UNSIGNED,
	Seq BIGINT UNSIGNED,
	Time VARCHAR(255),
	Event VARCHAR(255),
	Details TEXT,
	PRIMARY KEY (TraceID, Seq),
	FOREIGN KEY (TraceID) REFERENCES Traces(TraceID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS EventsEvent ON Events(Event);
{{end}}
`))

// createTables runs the schema statements for driverName.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// prepareStatements prepares the inserts used by NewTrace and
// InsertEvents.
func (db *DB) prepareStatements() error {
	var err error
	db.insertTrace, err = db.sql.Prepare("INSERT INTO Traces(Name) VALUES (?)")
	if err != nil {
		return err
	}
	db.insertEvent, err = db.sql.Prepare("INSERT INTO Events(TraceID, Seq, Time, Event, Details) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// A Trace is one archived perf script run.
type Trace struct {
	// ID is the trace's primary key.
	ID int64
	// seq is the sequence number of the next event to insert.
	seq int64
	db  *DB
}

// NewTrace registers a new trace with the given name, typically the
// input file name.
func (db *DB) NewTrace(ctx context.Context, name string) (*Trace, error) {
	res, err := db.insertTrace.ExecContext(ctx, name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &Trace{ID: id, db: db}, nil
}

// InsertEvents appends events to the trace in a single transaction.
// Sequence numbers continue from the previous call.
func (t *Trace) InsertEvents(ctx context.Context, events []perfscript.Event) (err error) {
	tx, err := t.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	stmt := tx.StmtContext(ctx, t.db.insertEvent)
	seq := t.seq
	for _, ev := range events {
		if _, err := stmt.ExecContext(ctx, t.ID, seq, ev.Time, ev.Event, ev.Details); err != nil {
			return err
		}
		seq++
	}
	t.seq = seq
	return nil
}

// Events returns the events of trace id in insertion order.
func (db *DB) Events(ctx context.Context, id int64) ([]perfscript.Event, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT Time, Event, Details FROM Events WHERE TraceID = ? ORDER BY Seq", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := []perfscript.Event{}
	for rows.Next() {
		var ev perfscript.Event
		if err := rows.Scan(&ev.Time, &ev.Event, &ev.Details); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CountTraces returns the number of archived traces.
func (db *DB) CountTraces(ctx context.Context) (n int, err error) {
	err = db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Traces").Scan(&n)
	return
}

// Close releases the prepared statements and closes the database.
// It returns the first error encountered.
func (db *DB) Close() error {
	return closeAll(db.insertTrace, db.insertEvent, db.sql)
}

// closeAll closes every c, even after a failure, and returns the first
// error.
func closeAll(cs ...io.Closer) error {
	var first error
	for _, c := range cs {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
