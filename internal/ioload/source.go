package ioload

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnames/idmdash/internal/iosnapshot"
	"github.com/gnames/idmdash/pkg/datasets"
	"github.com/gnames/idmdash/pkg/table"
	"github.com/xuri/excelize/v2"
)

// Source is a storage the Loader reads raw tables from.
type Source interface {
	// Locate returns the name a dataset has in the source, or an empty
	// string if the manifest does not list it.
	Locate(m *datasets.Manifest, k datasets.Kind) string

	// Read returns the complete table called name.
	Read(ctx context.Context, name string) (*table.Table, error)
}

// XLSX reads datasets from spreadsheets in a directory.
type XLSX struct {
	Dir string
}

// NewXLSX creates a Source of spreadsheets inside dir.
func NewXLSX(dir string) *XLSX {
	return &XLSX{Dir: dir}
}

func (x *XLSX) Locate(m *datasets.Manifest, k datasets.Kind) string {
	return m.Path(x.Dir, k)
}

// Read takes the first worksheet of the file at path. The first row is
// the header. Cells are read raw so that dates stay Excel serials and
// numbers keep full precision.
func (x *XLSX) Read(_ context.Context, path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot read worksheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet %s is empty", sheets[0])
	}
	return table.New(path, rows[0], rows[1:]), nil
}

// SQLite reads datasets from a snapshot, one table per dataset kind.
type SQLite struct {
	snap *iosnapshot.Snapshot
}

// NewSQLite creates a Source backed by an open snapshot.
func NewSQLite(snap *iosnapshot.Snapshot) *SQLite {
	return &SQLite{snap: snap}
}

func (s *SQLite) Locate(m *datasets.Manifest, k datasets.Kind) string {
	if m.Path("", k) == "" {
		return ""
	}
	return string(k)
}

func (s *SQLite) Read(ctx context.Context, name string) (*table.Table, error) {
	return s.snap.Read(ctx, name)
}
