package idm

import (
	"math"

	"github.com/shopspring/decimal"
)

// Value is the outcome of an index lookup. A zero Value means the
// (department, year) pair is absent from the data.
type Value struct {
	IDM   int  `json:"idm"`
	Found bool `json:"found"`
}

// NotFound is the Value of an absent (department, year) pair.
var NotFound = Value{}

// Key identifies an annual record.
type Key struct {
	Department string
	Year       int
}

// Lookup returns the index of a department for a year rounded to an
// integer. Halves are rounded to the even neighbour. When the data has
// more than one matching row, the first one wins. A match without a
// finite value is NotFound.
func Lookup(records []AnnualRecord, year int, department string) Value {
	for _, v := range records {
		if v.Year == year && v.Department == department {
			if math.IsNaN(v.IDM) || math.IsInf(v.IDM, 0) {
				return NotFound
			}
			return Value{IDM: Round(v.IDM), Found: true}
		}
	}
	return NotFound
}

// Round rounds half to even.
func Round(f float64) int {
	return int(decimal.NewFromFloat(f).RoundBank(0).IntPart())
}

// Duplicates returns keys that occur more than once, in order of their
// second occurrence.
func Duplicates(records []AnnualRecord) []Key {
	seen := make(map[Key]int)
	var res []Key
	for _, v := range records {
		k := Key{Department: v.Department, Year: v.Year}
		seen[k]++
		if seen[k] == 2 {
			res = append(res, k)
		}
	}
	return res
}
