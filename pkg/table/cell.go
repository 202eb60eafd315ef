package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var nulls = map[string]struct{}{
	"":     {},
	"nan":  {},
	"null": {},
	"none": {},
	"na":   {},
	"n/a":  {},
	"#n/a": {},
}

// IsNull reports whether a raw cell value means "no value".
func IsNull(s string) bool {
	_, ok := nulls[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"2006-01",
}

// Integers beyond this magnitude lose precision as float64.
const maxExactInt = 1 << 53

// Excel serial of 9999-12-31, the last date a spreadsheet can hold.
const maxExcelSerial = 2958465

// Float returns a cell as float64. NaN is a null, infinities are
// rejected with ErrNotFinite.
func (t *Table) Float(row int, col string) (float64, error) {
	s := t.Cell(row, col)
	if IsNull(s) {
		return 0, ErrNull
	}
	res, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil && !math.IsInf(res, 0) {
		return 0, fmt.Errorf("column %s, row %d: %w", col, row+1, err)
	}
	if math.IsNaN(res) {
		return 0, ErrNull
	}
	if math.IsInf(res, 0) {
		return 0, fmt.Errorf("column %s, row %d: %q: %w",
			col, row+1, s, ErrNotFinite)
	}
	return res, nil
}

// Int returns a cell as int. Spreadsheets often keep integers as
// floats ("2024.0"), those are accepted when they have no fraction.
func (t *Table) Int(row int, col string) (int, error) {
	f, err := t.Float(row, col)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("column %s, row %d: %v is not an integer",
			col, row+1, f)
	}
	if math.Abs(f) > maxExactInt {
		return 0, fmt.Errorf("column %s, row %d: %v is out of integer range",
			col, row+1, f)
	}
	return int(f), nil
}

// Time returns a cell as a date. Numeric cells are treated as Excel
// serial dates, text cells are parsed with common ISO-like layouts.
func (t *Table) Time(row int, col string) (time.Time, error) {
	s := t.Cell(row, col)
	if IsNull(s) {
		return time.Time{}, ErrNull
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil || math.IsInf(f, 0) {
		if math.IsNaN(f) || f < 0 || f > maxExcelSerial {
			return time.Time{}, fmt.Errorf("column %s, row %d: %q is not a date",
				col, row+1, s)
		}
		res, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("column %s, row %d: %w",
				col, row+1, err)
		}
		return res, nil
	}
	for _, l := range dateLayouts {
		if res, err := time.Parse(l, s); err == nil {
			return res, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %s, row %d: cannot parse date %q",
		col, row+1, s)
}
