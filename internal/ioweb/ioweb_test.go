package ioweb_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gnames/idmdash/internal/ioweb"
	"github.com/gnames/idmdash/pkg/dashboard"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() *dashboard.Data {
	count := func(f float64) *float64 { return &f }
	shortages := make([]idm.ShortageRecord, 20)
	for i := range shortages {
		shortages[i] = idm.ShortageRecord{
			Department:    "LIMA",
			Year:          2024,
			MedicineGroup: fmt.Sprintf("Grupo %02d", i+1),
			Count:         count(float64(50 - i)),
		}
	}
	d := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	return &dashboard.Data{
		Filters: idm.DefaultFilters(),
		Annual: map[idm.Scope][]idm.AnnualRecord{
			idm.ScopeTotal:    {{Department: "LIMA", Year: 2024, IDM: 87.4}},
			idm.ScopeHospital: {{Department: "LIMA", Year: 2024, IDM: 95}},
		},
		Facilities: []idm.FacilityRecord{
			{Name: "Hospital Loayza", Type: idm.Hospital, TypeName: "Hospital",
				Availability: 92.5, HasAvailability: true,
				Lat: -12.05, Lon: -77.04, Year: 2024, Department: "LIMA"},
		},
		Series: map[idm.Scope][]idm.SeriesPoint{
			idm.ScopeHospital: {{Department: "LIMA", Date: d, IDM: 80}},
		},
		Shortages: shortages,
	}
}

func newServer(data *dashboard.Data) (*ioweb.Server, *dashboard.Controller) {
	ctrl := dashboard.New(data, dashboard.Options{
		DefaultDepartment: "LIMA",
		DefaultYear:       2024,
	})
	return ioweb.New(ctrl, 0), ctrl
}

func get(t *testing.T, s *ioweb.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	s, _ := newServer(testData())

	tests := []struct {
		msg    string
		target string
		status int
		ctype  string
		body   string
	}{
		{"health", "/api/v1/health", 200, "application/json", `"status":"ok"`},
		{"filters", "/api/v1/filters", 200, "application/json", `"LAMBAYEQUE"`},
		{"dashboard", "/api/v1/dashboard", 200, "application/json", `"87 %"`},
		{"gauge", "/api/v1/gauges/total", 200, "image/svg+xml", "<svg"},
		{"gauge not found", "/api/v1/gauges/clinic", 404, "application/json", "clinic"},
		{"series", "/api/v1/timeseries", 200, "image/svg+xml", "<svg"},
		{"map", "/api/v1/map", 200, "application/geo+json", "Hospital Loayza"},
		{"ranking", "/api/v1/ranking", 200, "application/json", "Grupo 15"},
		{"page", "/", 200, "text/html", "Hospital Loayza"},
		{"bad year", "/api/v1/dashboard?year=1990", 400, "application/json", "year"},
		{"bad department", "/api/v1/ranking?department=ATLANTIS", 400,
			"application/json", "department"},
		{"not a number", "/api/v1/dashboard?year=abc", 400, "application/json", ""},
	}

	for _, v := range tests {
		rec := get(t, s, v.target)
		assert.Equal(t, v.status, rec.Code, v.msg)
		assert.True(t,
			strings.HasPrefix(rec.Header().Get("Content-Type"), v.ctype), v.msg)
		assert.Contains(t, rec.Body.String(), v.body, v.msg)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"), v.msg)
	}
}

func TestDashboardJSON(t *testing.T) {
	s, _ := newServer(testData())
	rec := get(t, s, "/api/v1/dashboard?year=2019&department=TUMBES")
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Selection dashboard.Selection `json:"selection"`
		Gauges    []struct {
			Text  string    `json:"text"`
			Value idm.Value `json:"value"`
		} `json:"gauges"`
		Ranking struct {
			Rows []any `json:"rows"`
		} `json:"ranking"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &res)
	require.NoError(t, err)
	assert.Equal(t, dashboard.Selection{Year: 2019, Department: "TUMBES"}, res.Selection)
	require.Len(t, res.Gauges, 4)
	for _, g := range res.Gauges {
		assert.False(t, g.Value.Found)
		assert.Equal(t, "Sin datos", g.Text)
	}
	assert.Empty(t, res.Ranking.Rows)
}

func TestPageChangesSelection(t *testing.T) {
	s, ctrl := newServer(testData())

	rec := get(t, s, "/api/v1/dashboard?department=PUNO")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "LIMA", ctrl.Selection().Department, "API is read-only")

	rec = get(t, s, "/?department=PUNO&year=2020")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dashboard.Selection{Year: 2020, Department: "PUNO"},
		ctrl.Selection())

	rec = get(t, s, "/?year=1900")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 2020, ctrl.Selection().Year)
}

func TestMapError(t *testing.T) {
	data := testData()
	data.Facilities = nil
	data.GeoErr = idm.NullCoordinateError("geo_idm_anual.xlsx", []int{1, 2})
	s, _ := newServer(data)

	rec := get(t, s, "/api/v1/map")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var res ioweb.ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &res)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Contains(t, res.Message, "latitud")

	rec = get(t, s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "map-error")
}
