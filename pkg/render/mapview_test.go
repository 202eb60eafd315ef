package render_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/idmdash/pkg/idm"
	"github.com/gnames/idmdash/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geoRecords() []idm.FacilityRecord {
	return []idm.FacilityRecord{
		{Name: "Hospital <Loayza>", Type: idm.Hospital, TypeName: "Hospital",
			Availability: 92.5, HasAvailability: true,
			Lat: -12.05, Lon: -77.04, Year: 2024, Department: "LIMA"},
		{Name: "CS Surquillo", Type: idm.HealthCenter, TypeName: "Centro de salud",
			Lat: -12.11, Lon: -77.02, Year: 2024, Department: "LIMA"},
		{Name: "PS Huaral", Type: idm.HealthPost, TypeName: "Puesto de Salud",
			Availability: 40, HasAvailability: true,
			Lat: -11.49, Lon: -77.2, Year: 2024, Department: "LIMA"},
		{Name: "Instituto", Type: idm.Other, TypeName: "Instituto",
			Availability: 75, HasAvailability: true,
			Lat: -12.0, Lon: -77.0, Year: 2024, Department: "LIMA"},
		{Name: "H Cusco", Type: idm.Hospital, TypeName: "Hospital",
			Availability: 60, HasAvailability: true,
			Lat: -13.5, Lon: -71.9, Year: 2024, Department: "CUSCO"},
	}
}

func TestNewMap(t *testing.T) {
	t.Run("national centering", func(t *testing.T) {
		m := render.NewMap(geoRecords(), 2024, "LIMA", render.CenterNational)
		assert.Equal(t, render.NationalCenter, m.Center)
		assert.Equal(t, render.NationalZoom, m.Zoom)
		assert.Equal(t, "cartodbpositron", m.Tiles)
		require.Len(t, m.Layers, 4)
		names := []string{
			m.Layers[0].Name, m.Layers[1].Name, m.Layers[2].Name, m.Layers[3].Name,
		}
		assert.Equal(t,
			[]string{"Hospital", "Centro de salud", "Puesto de Salud", "Otro"},
			names)
		assert.Equal(t, 4, m.Markers())
		for _, l := range m.Layers {
			assert.Len(t, l.Markers, 1, l.Name)
		}
	})

	t.Run("first record centering", func(t *testing.T) {
		m := render.NewMap(geoRecords(), 2024, "CUSCO", render.CenterFirstRecord)
		assert.Equal(t, render.LatLon{Lat: -13.5, Lon: -71.9}, m.Center)
		assert.Equal(t, render.RecordZoom, m.Zoom)
	})

	t.Run("empty selection", func(t *testing.T) {
		m := render.NewMap(geoRecords(), 2019, "LIMA", render.CenterFirstRecord)
		assert.Equal(t, render.NationalCenter, m.Center)
		assert.Equal(t, 0, m.Markers())
		assert.Len(t, m.Layers, 4)
	})
}

func TestMarker(t *testing.T) {
	m := render.NewMap(geoRecords(), 2024, "LIMA", render.CenterNational)

	h := m.Layers[0].Markers[0]
	assert.Contains(t, h.Popup, "Hospital &lt;Loayza&gt;")
	assert.Contains(t, h.Popup, "<b>Disponibilidad:</b> 92.5%")
	assert.Equal(t, "#27AE60", h.Color)
	require.NotNil(t, h.Availability)
	assert.Len(t, h.ID, 36)

	c := m.Layers[1].Markers[0]
	assert.Nil(t, c.Availability)
	assert.Contains(t, c.Popup, "sin dato")
	assert.Equal(t, "#BDC3C7", c.Color)

	again := render.NewMap(geoRecords(), 2024, "LIMA", render.CenterNational)
	assert.Equal(t, h.ID, again.Layers[0].Markers[0].ID)
}

func TestGeoJSON(t *testing.T) {
	m := render.NewMap(geoRecords(), 2024, "LIMA", render.CenterNational)
	res, err := m.GeoJSON()
	require.NoError(t, err)

	var doc struct {
		Type     string    `json:"type"`
		Center   []float64 `json:"center"`
		Zoom     int       `json:"zoom"`
		Layers   []string  `json:"layers"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(res, &doc))
	assert.Equal(t, "FeatureCollection", doc.Type)
	assert.Equal(t, []float64{-9.19, -75.0152}, doc.Center)
	assert.Equal(t, 7, doc.Zoom)
	assert.Len(t, doc.Layers, 4)
	require.Len(t, doc.Features, 4)

	f := doc.Features[0]
	assert.Equal(t, []float64{-77.04, -12.05}, f.Geometry.Coordinates)
	assert.Equal(t, "Hospital", f.Properties["layer"])
	assert.Equal(t, 92.5, f.Properties["availability"])
	assert.Nil(t, doc.Features[1].Properties["availability"])
}

func TestEmptyMapGeoJSON(t *testing.T) {
	res, err := render.EmptyMap().GeoJSON()
	require.NoError(t, err)
	assert.Contains(t, string(res), `"features":[]`)
}
