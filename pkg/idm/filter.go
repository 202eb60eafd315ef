package idm

// FilterFacilities returns facilities of a department for a year in
// table order.
func FilterFacilities(records []FacilityRecord, year int, department string) []FacilityRecord {
	var res []FacilityRecord
	for _, v := range records {
		if v.Year == year && v.Department == department {
			res = append(res, v)
		}
	}
	return res
}

// Partition splits facilities by type. Every type of FacilityTypes is
// present in the result, possibly with no records.
func Partition(records []FacilityRecord) map[FacilityType][]FacilityRecord {
	res := make(map[FacilityType][]FacilityRecord, len(FacilityTypes))
	for _, t := range FacilityTypes {
		res[t] = nil
	}
	for _, v := range records {
		res[v.Type] = append(res[v.Type], v)
	}
	return res
}

// FilterSeries returns points of a department in table order. Series
// are not filtered by year.
func FilterSeries(points []SeriesPoint, department string) []SeriesPoint {
	var res []SeriesPoint
	for _, v := range points {
		if v.Department == department {
			res = append(res, v)
		}
	}
	return res
}

// TopShortages returns at most limit shortage records of a department
// for a year. The records are expected to be sorted upstream, their
// order is kept.
func TopShortages(records []ShortageRecord, year int, department string, limit int) []ShortageRecord {
	var res []ShortageRecord
	if limit <= 0 {
		return res
	}
	for _, v := range records {
		if v.Year != year || v.Department != department {
			continue
		}
		res = append(res, v)
		if len(res) == limit {
			break
		}
	}
	return res
}
