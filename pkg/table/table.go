// Package table keeps a dataset in memory exactly as it was read from
// storage: a header row and string cells. Typed access happens on
// demand so that the same Table can serve every consumer.
package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gnlib"
)

// ErrNull is returned by typed accessors when a cell holds no value.
var ErrNull = errors.New("null value")

// ErrNotFinite is returned by numeric accessors for infinite values.
var ErrNotFinite = errors.New("value is not finite")

// Table is an immutable rectangular dataset.
type Table struct {
	// Name identifies the dataset, usually its file path or snapshot
	// table name.
	Name string

	// Columns are header names in storage order.
	Columns []string

	// Rows hold cell values, every row is len(Columns) long.
	Rows [][]string

	index map[string]int
}

// New creates a Table normalizing header names and row lengths.
// Header names are trimmed; when a header repeats, the first
// occurrence is used for lookups.
func New(name string, columns []string, rows [][]string) *Table {
	cols := make([]string, len(columns))
	for i, v := range columns {
		cols[i] = strings.TrimSpace(gnlib.FixUtf8(v))
	}

	res := &Table{
		Name:    name,
		Columns: cols,
		Rows:    make([][]string, 0, len(rows)),
		index:   make(map[string]int, len(cols)),
	}
	for i, v := range cols {
		if _, ok := res.index[v]; !ok {
			res.index[v] = i
		}
	}

	for _, row := range rows {
		r := make([]string, len(cols))
		for i := range r {
			if i < len(row) {
				r[i] = strings.TrimSpace(gnlib.FixUtf8(row[i]))
			}
		}
		res.Rows = append(res.Rows, r)
	}
	return res
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Missing returns the names from cols that are absent from the table,
// keeping the given order.
func (t *Table) Missing(cols ...string) []string {
	var res []string
	for _, v := range cols {
		if !t.Has(v) {
			res = append(res, v)
		}
	}
	return res
}

// Project returns a new Table restricted to cols, in the given order.
// It fails if any of the columns is absent.
func (t *Table) Project(cols ...string) (*Table, error) {
	if missing := t.Missing(cols...); len(missing) > 0 {
		return nil, fmt.Errorf("table %s has no columns %s",
			t.Name, strings.Join(missing, ", "))
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		r := make([]string, len(cols))
		for j, c := range cols {
			r[j] = row[t.index[c]]
		}
		rows[i] = r
	}
	return New(t.Name, cols, rows), nil
}

// Cell returns the raw value of a cell, or an empty string if the
// column does not exist or the row is out of range.
func (t *Table) Cell(row int, col string) string {
	idx, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// IsNull reports whether a cell of the table holds no value.
func (t *Table) IsNull(row int, col string) bool {
	return IsNull(t.Cell(row, col))
}

// NullRows returns indices of rows where any of cols is null.
func (t *Table) NullRows(cols ...string) []int {
	var res []int
	for i := range t.Rows {
		for _, c := range cols {
			if t.IsNull(i, c) {
				res = append(res, i)
				break
			}
		}
	}
	return res
}

// Distinct returns unique non-null values of a column in order of
// their first appearance.
func (t *Table) Distinct(col string) []string {
	seen := make(map[string]struct{})
	var res []string
	for i := range t.Rows {
		v := t.Cell(i, col)
		if IsNull(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
