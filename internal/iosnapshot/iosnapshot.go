// Package iosnapshot stores dataset tables in a single SQLite file.
//
// Every dataset becomes one table with TEXT columns named after the
// dataset header. Empty cells are stored as NULL. The catalog table
// remembers where each dataset came from.
package iosnapshot

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gnames/idmdash/pkg/table"
	_ "modernc.org/sqlite"
)

const catalog = "idm_catalog"

// Entry describes a dataset stored in the snapshot.
type Entry struct {
	Name   string
	Source string
	Rows   int
}

// Snapshot is an open SQLite snapshot.
type Snapshot struct {
	path string
	db   *sql.DB
}

// Open opens or creates a snapshot file.
func Open(path string) (*Snapshot, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, SnapshotOpenError(path, err)
	}

	q := `CREATE TABLE IF NOT EXISTS ` + quote(catalog) + ` (
		name TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		rows INTEGER NOT NULL
	)`
	if _, err = db.Exec(q); err != nil {
		_ = db.Close()
		return nil, SnapshotOpenError(path, err)
	}

	return &Snapshot{path: path, db: db}, nil
}

// Path returns the location of the snapshot file.
func (s *Snapshot) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// Write replaces the dataset name with the content of t.
func (s *Snapshot) Write(ctx context.Context, name string, t *table.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SnapshotWriteError(name, err)
	}
	if err = writeTable(ctx, tx, name, t); err != nil {
		_ = tx.Rollback()
		return SnapshotWriteError(name, err)
	}
	if err = tx.Commit(); err != nil {
		return SnapshotWriteError(name, err)
	}
	return nil
}

func writeTable(ctx context.Context, tx *sql.Tx, name string, t *table.Table) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table %s has no columns", t.Name)
	}

	names := columnNames(t.Columns)
	cols := make([]string, len(names))
	marks := make([]string, len(names))
	for i, v := range names {
		cols[i] = quote(v) + " TEXT"
		marks[i] = "?"
	}

	stmts := []string{
		"DROP TABLE IF EXISTS " + quote(name),
		"CREATE TABLE " + quote(name) + " (" + strings.Join(cols, ", ") + ")",
	}
	for _, v := range stmts {
		if _, err := tx.ExecContext(ctx, v); err != nil {
			return err
		}
	}

	q := "INSERT INTO " + quote(name) + " VALUES (" +
		strings.Join(marks, ", ") + ")"
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	// cells keep their text, only empty cells become NULL
	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			if v == "" {
				args[i] = nil
			} else {
				args[i] = v
			}
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}

	q = "INSERT OR REPLACE INTO " + quote(catalog) +
		" (name, source, rows) VALUES (?, ?, ?)"
	_, err = tx.ExecContext(ctx, q, name, t.Name, t.Len())
	return err
}

// Read returns the dataset name in insertion order.
func (s *Snapshot) Read(ctx context.Context, name string) (*table.Table, error) {
	q := "SELECT * FROM " + quote(name) + " ORDER BY rowid"
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, SnapshotReadError(name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, SnapshotReadError(name, err)
	}

	var data [][]string
	vals := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return nil, SnapshotReadError(name, err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = v.String
		}
		data = append(data, row)
	}
	if err = rows.Err(); err != nil {
		return nil, SnapshotReadError(name, err)
	}

	return table.New(name, cols, data), nil
}

// Entries lists datasets of the snapshot sorted by name.
func (s *Snapshot) Entries(ctx context.Context) ([]Entry, error) {
	q := "SELECT name, source, rows FROM " + quote(catalog) + " ORDER BY name"
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, SnapshotReadError(catalog, err)
	}
	defer rows.Close()

	var res []Entry
	for rows.Next() {
		var e Entry
		if err = rows.Scan(&e.Name, &e.Source, &e.Rows); err != nil {
			return nil, SnapshotReadError(catalog, err)
		}
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, SnapshotReadError(catalog, err)
	}
	return res, nil
}

// columnNames makes header names usable as SQLite columns. Names are
// unique ignoring case, so repeated and empty headers get a numeric
// suffix. The first occurrence keeps its name, lookups by name find
// the same column as in the source.
func columnNames(cols []string) []string {
	res := make([]string, len(cols))
	seen := make(map[string]struct{}, len(cols))
	for i, v := range cols {
		base := v
		if base == "" {
			base = "column"
		}
		name := base
		if v == "" {
			name = fmt.Sprintf("%s_%d", base, i+1)
		}
		for n := 2; ; n++ {
			if _, ok := seen[strings.ToLower(name)]; !ok {
				break
			}
			name = fmt.Sprintf("%s_%d", base, n)
		}
		seen[strings.ToLower(name)] = struct{}{}
		res[i] = name
	}
	return res
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
