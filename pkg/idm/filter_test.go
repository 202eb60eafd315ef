package idm_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/gnames/idmdash/pkg/idm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facilities() []idm.FacilityRecord {
	return []idm.FacilityRecord{
		{Name: "H1", Type: idm.Hospital, Year: 2024, Department: "LIMA"},
		{Name: "C1", Type: idm.HealthCenter, Year: 2024, Department: "LIMA"},
		{Name: "P1", Type: idm.HealthPost, Year: 2024, Department: "LIMA"},
		{Name: "O1", Type: idm.Other, Year: 2024, Department: "LIMA"},
		{Name: "H2", Type: idm.Hospital, Year: 2023, Department: "LIMA"},
		{Name: "C2", Type: idm.HealthCenter, Year: 2024, Department: "PUNO"},
		{Name: "C3", Type: idm.HealthCenter, Year: 2024, Department: "LIMA"},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		tipo string
		res  idm.FacilityType
	}{
		{"Hospital", idm.Hospital},
		{"Centro de salud", idm.HealthCenter},
		{"Puesto de Salud", idm.HealthPost},
		{"Instituto", idm.Other},
		{"hospital", idm.Other},
		{"", idm.Other},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, idm.Classify(v.tipo), v.tipo)
	}
	assert.Equal(t, "Otro", idm.Other.String())
	assert.Equal(t, "Centro de salud", idm.HealthCenter.String())
}

func TestFilterFacilities(t *testing.T) {
	res := idm.FilterFacilities(facilities(), 2024, "LIMA")
	var names []string
	for _, v := range res {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"H1", "C1", "P1", "O1", "C3"}, names)

	assert.Empty(t, idm.FilterFacilities(facilities(), 2019, "LIMA"))
}

func TestPartition(t *testing.T) {
	recs := facilities()
	res := idm.Partition(recs)

	require.Len(t, res, 4)
	var total int
	seen := make(map[string]idm.FacilityType)
	for typ, group := range res {
		for _, v := range group {
			assert.Equal(t, typ, v.Type)
			_, dup := seen[v.Name]
			assert.False(t, dup, v.Name)
			seen[v.Name] = typ
		}
		total += len(group)
	}
	assert.Equal(t, len(recs), total)
	assert.Len(t, res[idm.HealthCenter], 3)

	empty := idm.Partition(nil)
	require.Len(t, empty, 4)
	for _, group := range empty {
		assert.Empty(t, group)
	}
}

func TestFilterSeries(t *testing.T) {
	d := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	pts := []idm.SeriesPoint{
		{Department: "LIMA", Date: d, IDM: 80},
		{Department: "PUNO", Date: d, IDM: 60},
		{Department: "LIMA", Date: d.AddDate(0, 1, 0), IDM: 82},
	}
	res := idm.FilterSeries(pts, "LIMA")
	require.Len(t, res, 2)
	assert.Equal(t, 82.0, res[1].IDM)
	assert.Empty(t, idm.FilterSeries(pts, "CUSCO"))
}

func shortages(n int) []idm.ShortageRecord {
	var res []idm.ShortageRecord
	for i := range n {
		cnt := float64(100 - i)
		res = append(res, idm.ShortageRecord{
			Department:    "LIMA",
			Year:          2024,
			MedicineGroup: fmt.Sprintf("G%02d", i),
			Count:         &cnt,
		})
	}
	// records of other selections are interleaved
	res = append(res[:3:3], append([]idm.ShortageRecord{
		{Department: "PUNO", Year: 2024, MedicineGroup: "X"},
		{Department: "LIMA", Year: 2023, MedicineGroup: "Y"},
	}, res[3:]...)...)
	return res
}

func TestTopShortages(t *testing.T) {
	t.Run("truncates to limit keeping order", func(t *testing.T) {
		res := idm.TopShortages(shortages(20), 2024, "LIMA", 15)
		require.Len(t, res, 15)
		for i, v := range res {
			assert.Equal(t, fmt.Sprintf("G%02d", i), v.MedicineGroup)
		}
	})

	t.Run("returns fewer when fewer match", func(t *testing.T) {
		res := idm.TopShortages(shortages(4), 2024, "LIMA", 15)
		assert.Len(t, res, 4)
	})

	t.Run("no matches", func(t *testing.T) {
		res := idm.TopShortages(shortages(4), 2019, "LIMA", 15)
		assert.Empty(t, res)
	})

	t.Run("never more than limit", func(t *testing.T) {
		for limit := 0; limit < 25; limit++ {
			res := idm.TopShortages(shortages(20), 2024, "LIMA", limit)
			assert.LessOrEqual(t, len(res), limit)
			assert.Len(t, res, min(limit, 20))
		}
	})
}

func TestFilters(t *testing.T) {
	f := idm.DefaultFilters()
	assert.Len(t, f.Departments, 25)
	assert.Equal(t, "AMAZONAS", f.Departments[0])
	assert.Equal(t, 2024, f.LatestYear())
	assert.True(t, f.HasYear(2019))
	assert.False(t, f.HasYear(2018))
	assert.True(t, f.HasDepartment("CALLAO"))
	assert.False(t, f.HasDepartment("Lima"))

	assert.Equal(t, 0, idm.Filters{}.LatestYear())
}
