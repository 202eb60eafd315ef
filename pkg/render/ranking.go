package render

import "github.com/gnames/idmdash/pkg/idm"

// RankingRow is a medicine group of the shortage ranking.
type RankingRow struct {
	MedicineGroup string   `json:"medicine_group"`
	Count         *float64 `json:"count"`
	// Share is Count relative to the largest count of the table, it
	// drives the progress bar of the row.
	Share float64 `json:"share"`
}

// RankingVisual is the table of most frequently out-of-stock medicine
// groups.
type RankingVisual struct {
	Title string       `json:"title"`
	Limit int          `json:"limit"`
	Max   float64      `json:"max"`
	Rows  []RankingRow `json:"rows"`
}

// NewRanking takes the first limit shortage records of a selection.
func NewRanking(records []idm.ShortageRecord, year int, department string, limit int) RankingVisual {
	top := idm.TopShortages(records, year, department, limit)
	res := RankingVisual{
		Title: "Medicamentos más desabastecidos",
		Limit: limit,
		Rows:  make([]RankingRow, len(top)),
	}
	for i, v := range top {
		res.Rows[i] = RankingRow{MedicineGroup: v.MedicineGroup, Count: v.Count}
		if v.Count != nil && *v.Count > res.Max {
			res.Max = *v.Count
		}
	}
	if res.Max > 0 {
		for i, v := range res.Rows {
			if v.Count != nil {
				res.Rows[i].Share = *v.Count / res.Max
			}
		}
	}
	return res
}
