package idm

import (
	"slices"
)

// DefaultYears are the years covered by the datasets.
var DefaultYears = []int{2019, 2020, 2021, 2022, 2023, 2024}

// DefaultDepartments is the closed list of departments offered for
// selection, in the order of the selector.
var DefaultDepartments = []string{
	"AMAZONAS", "CAJAMARCA", "AREQUIPA", "AYACUCHO", "APURIMAC",
	"ANCASH", "HUANUCO", "ICA", "HUANCAVELICA", "CUSCO", "CALLAO",
	"UCAYALI", "TUMBES", "SANMARTIN", "TACNA", "PUNO", "PIURA", "PASCO",
	"LORETO", "MOQUEGUA", "MADREDEDIOS", "LIMA", "LALIBERTAD", "JUNIN",
	"LAMBAYEQUE",
}

// Filters are the values a user can choose from.
type Filters struct {
	Years       []int    `json:"years"`
	Departments []string `json:"departments"`
}

// DefaultFilters returns the built-in lists of years and departments.
func DefaultFilters() Filters {
	return Filters{
		Years:       slices.Clone(DefaultYears),
		Departments: slices.Clone(DefaultDepartments),
	}
}

func (f *Filters) normalize() {
	slices.Sort(f.Years)
}

// LatestYear returns the most recent year, or 0 if there are no years.
func (f Filters) LatestYear() int {
	if len(f.Years) == 0 {
		return 0
	}
	return slices.Max(f.Years)
}

// HasYear reports whether the year can be selected.
func (f Filters) HasYear(y int) bool {
	return slices.Contains(f.Years, y)
}

// HasDepartment reports whether the department can be selected.
func (f Filters) HasDepartment(d string) bool {
	return slices.Contains(f.Departments, d)
}
