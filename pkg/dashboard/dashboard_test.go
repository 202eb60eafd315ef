package dashboard_test

import (
	"fmt"
	"time"

	"github.com/gnames/idmdash/pkg/dashboard"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/gnames/idmdash/pkg/render"
)

func testData() *dashboard.Data {
	d := func(m int) time.Time {
		return time.Date(2023, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	}
	count := func(f float64) *float64 { return &f }

	shortages := make([]idm.ShortageRecord, 20)
	for i := range shortages {
		shortages[i] = idm.ShortageRecord{
			Department:    "LIMA",
			Year:          2024,
			MedicineGroup: fmt.Sprintf("Grupo %02d", i+1),
			Count:         count(float64(100 - i)),
		}
	}

	return &dashboard.Data{
		Filters: idm.DefaultFilters(),
		Annual: map[idm.Scope][]idm.AnnualRecord{
			idm.ScopeTotal: {
				{Department: "LIMA", Year: 2024, IDM: 87.4},
				{Department: "AMAZONAS", Year: 2024, IDM: 55},
			},
			idm.ScopeHospital: {
				{Department: "LIMA", Year: 2024, IDM: 92.5},
			},
			idm.ScopeCenter: {
				{Department: "LIMA", Year: 2024, IDM: 64.6},
			},
			idm.ScopePost: {
				{Department: "LIMA", Year: 2024, IDM: 30},
			},
		},
		Facilities: []idm.FacilityRecord{
			{Name: "Hospital Loayza", Type: idm.Hospital, TypeName: "Hospital",
				Availability: 92.5, HasAvailability: true,
				Lat: -12.05, Lon: -77.04, Year: 2024, Department: "LIMA"},
			{Name: "PS Huaral", Type: idm.HealthPost, TypeName: "Puesto de Salud",
				Lat: -11.49, Lon: -77.2, Year: 2024, Department: "LIMA"},
		},
		Series: map[idm.Scope][]idm.SeriesPoint{
			idm.ScopeHospital: {
				{Department: "LIMA", Date: d(1), IDM: 80},
				{Department: "LIMA", Date: d(2), IDM: 85},
			},
			idm.ScopeCenter: {{Department: "LIMA", Date: d(1), IDM: 65}},
			idm.ScopePost:   {{Department: "LIMA", Date: d(1), IDM: 35}},
		},
		Shortages: shortages,
	}
}

func testOptions() dashboard.Options {
	return dashboard.Options{
		DefaultDepartment: "LIMA",
		DefaultYear:       2024,
		Centering:         render.CenterNational,
		PoorFloor:         40,
		TopLimit:          15,
	}
}
