package idm

import (
	"errors"
	"fmt"

	"github.com/gnames/idmdash/pkg/table"
)

// DecodeAnnual converts an annual IDM table into records. Rows without
// department, year or index value are skipped: such pairs behave as
// absent for lookups.
func DecodeAnnual(t *table.Table) ([]AnnualRecord, error) {
	if missing := t.Missing(AnnualColumns...); len(missing) > 0 {
		return nil, fmt.Errorf("table %s misses columns %v", t.Name, missing)
	}

	res := make([]AnnualRecord, 0, t.Len())
	for i := range t.Rows {
		dept := t.Cell(i, ColDepartment)
		if table.IsNull(dept) {
			continue
		}
		year, err := t.Int(i, ColYear)
		if err != nil {
			if errors.Is(err, table.ErrNull) {
				continue
			}
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		val, err := percent(t, i, ColIDM)
		if err != nil {
			if errors.Is(err, table.ErrNull) {
				continue
			}
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		res = append(res, AnnualRecord{
			Department: dept,
			Year:       year,
			IDM:        val,
		})
	}
	return res, nil
}

// ValidateGeo checks that the facility table can be put on a map:
// coordinate columns exist and have no nulls. The error aborts map
// rendering, other parts of the dashboard are not affected.
func ValidateGeo(t *table.Table) error {
	if missing := t.Missing(ColLatitude, ColLongitude); len(missing) > 0 {
		return MissingColumnError(t.Name, []string{ColLatitude, ColLongitude})
	}
	if rows := t.NullRows(ColLatitude, ColLongitude); len(rows) > 0 {
		return NullCoordinateError(t.Name, rows)
	}
	if missing := t.Missing(GeoColumns...); len(missing) > 0 {
		return MissingColumnError(t.Name, missing)
	}
	return nil
}

// DecodeFacilities validates and converts the facility table.
func DecodeFacilities(t *table.Table) ([]FacilityRecord, error) {
	if err := ValidateGeo(t); err != nil {
		return nil, err
	}

	res := make([]FacilityRecord, 0, t.Len())
	for i := range t.Rows {
		lat, err := coordinate(t, i, ColLatitude, 90)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		lon, err := coordinate(t, i, ColLongitude, 180)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}

		dept := t.Cell(i, ColDepartment)
		year, err := t.Int(i, ColYear)
		if errors.Is(err, table.ErrNull) || table.IsNull(dept) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}

		rec := FacilityRecord{
			Name:       t.Cell(i, ColFacility),
			TypeName:   t.Cell(i, ColType),
			Lat:        lat,
			Lon:        lon,
			Year:       year,
			Department: dept,
		}
		rec.Type = Classify(rec.TypeName)

		av, err := percent(t, i, ColAvailability)
		switch {
		case err == nil:
			rec.Availability = av
			rec.HasAvailability = true
		case !errors.Is(err, table.ErrNull):
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		res = append(res, rec)
	}
	return res, nil
}

// DecodeSeries converts a time-series table. Points without a value
// are skipped.
func DecodeSeries(t *table.Table) ([]SeriesPoint, error) {
	if missing := t.Missing(SeriesColumns...); len(missing) > 0 {
		return nil, fmt.Errorf("table %s misses columns %v", t.Name, missing)
	}

	res := make([]SeriesPoint, 0, t.Len())
	for i := range t.Rows {
		dept := t.Cell(i, ColDepartment)
		if table.IsNull(dept) {
			continue
		}
		date, err := t.Time(i, ColDate)
		if errors.Is(err, table.ErrNull) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		val, err := percent(t, i, ColSeriesIDM)
		if errors.Is(err, table.ErrNull) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		res = append(res, SeriesPoint{Department: dept, Date: date, IDM: val})
	}
	return res, nil
}

// DecodeShortages converts the shortage ranking table keeping its
// order. The shortage count column is optional, an infinite count is
// treated as absent.
func DecodeShortages(t *table.Table) ([]ShortageRecord, error) {
	if missing := t.Missing(RankingColumns...); len(missing) > 0 {
		return nil, fmt.Errorf("table %s misses columns %v", t.Name, missing)
	}
	hasCount := t.Has(ColShortages)

	res := make([]ShortageRecord, 0, t.Len())
	for i := range t.Rows {
		dept := t.Cell(i, ColDepartment)
		year, err := t.Int(i, ColYear)
		if errors.Is(err, table.ErrNull) || table.IsNull(dept) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		rec := ShortageRecord{
			Department:    dept,
			Year:          year,
			MedicineGroup: t.Cell(i, ColMedicineGroup),
		}
		if hasCount {
			cnt, err := t.Float(i, ColShortages)
			switch {
			case err == nil:
				rec.Count = &cnt
			case !errors.Is(err, table.ErrNull) &&
				!errors.Is(err, table.ErrNotFinite):
				return nil, fmt.Errorf("table %s: %w", t.Name, err)
			}
		}
		res = append(res, rec)
	}
	return res, nil
}

// DecodeFilters reads the closed lists of years and departments from
// the sidebar table. Columns the table lacks fall back to defaults.
func DecodeFilters(t *table.Table) (Filters, error) {
	res := DefaultFilters()
	if t == nil {
		return res, nil
	}

	if t.Has(ColDepartment) {
		if depts := t.Distinct(ColDepartment); len(depts) > 0 {
			res.Departments = depts
		}
	}

	if t.Has(ColYear) {
		var years []int
		seen := make(map[int]struct{})
		for i := range t.Rows {
			y, err := t.Int(i, ColYear)
			if errors.Is(err, table.ErrNull) {
				continue
			}
			if err != nil {
				return res, fmt.Errorf("table %s: %w", t.Name, err)
			}
			if _, ok := seen[y]; ok {
				continue
			}
			seen[y] = struct{}{}
			years = append(years, y)
		}
		if len(years) > 0 {
			res.Years = years
		}
	}
	res.normalize()
	return res, nil
}

// percent reads an index or availability value, it has to be within
// [0, 100].
func percent(t *table.Table, row int, col string) (float64, error) {
	res, err := t.Float(row, col)
	if err != nil {
		return 0, err
	}
	if res < 0 || res > 100 {
		return 0, fmt.Errorf("column %s, row %d: %v is not a percentage",
			col, row+1, res)
	}
	return res, nil
}

// coordinate reads a latitude or longitude within [-limit, limit]
// degrees.
func coordinate(t *table.Table, row int, col string, limit float64) (float64, error) {
	res, err := t.Float(row, col)
	if err != nil {
		return 0, err
	}
	if res < -limit || res > limit {
		return 0, fmt.Errorf("column %s, row %d: %v is out of range",
			col, row+1, res)
	}
	return res, nil
}
