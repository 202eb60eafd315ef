package render

import (
	"fmt"
	"html"
	"strconv"

	"github.com/gnames/gnuuid"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Centering decides where the facility map opens.
type Centering string

const (
	// CenterNational opens the map over the whole country.
	CenterNational Centering = "national"
	// CenterFirstRecord opens the map over the first facility of the
	// selection.
	CenterFirstRecord Centering = "first_record"
)

// Map presentation constants.
const (
	NationalZoom  = 7
	RecordZoom    = 9
	Tiles         = "cartodbpositron"
	MarkerRadius  = 5
	PopupMaxWidth = 300
)

// NationalCenter is the point the country-wide map is centered on.
var NationalCenter = LatLon{Lat: -9.19, Lon: -75.0152}

// LatLon is a geographic position.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker is a facility drawn on the map.
type Marker struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Availability *float64 `json:"availability"`
	Position     LatLon   `json:"position"`
	Color        string   `json:"color"`
	Popup        string   `json:"popup"`
}

// Layer groups markers of one facility type, it can be toggled on the
// map.
type Layer struct {
	Name    string   `json:"name"`
	Markers []Marker `json:"markers"`
}

// MapVisual is the facility map of a selection.
type MapVisual struct {
	Center        LatLon  `json:"center"`
	Zoom          int     `json:"zoom"`
	Tiles         string  `json:"tiles"`
	MarkerRadius  int     `json:"marker_radius"`
	PopupMaxWidth int     `json:"popup_max_width"`
	Layers        []Layer `json:"layers"`
}

// EmptyMap is a country-wide map with empty layers.
func EmptyMap() MapVisual {
	res := MapVisual{
		Center:        NationalCenter,
		Zoom:          NationalZoom,
		Tiles:         Tiles,
		MarkerRadius:  MarkerRadius,
		PopupMaxWidth: PopupMaxWidth,
		Layers:        make([]Layer, len(idm.FacilityTypes)),
	}
	for i, t := range idm.FacilityTypes {
		res.Layers[i] = Layer{Name: t.String(), Markers: []Marker{}}
	}
	return res
}

// NewMap filters facilities of a selection and puts them into layers
// by facility type. An empty selection gives an empty map.
func NewMap(
	records []idm.FacilityRecord,
	year int,
	department string,
	centering Centering,
) MapVisual {
	res := EmptyMap()
	filtered := idm.FilterFacilities(records, year, department)
	if centering == CenterFirstRecord && len(filtered) > 0 {
		res.Center = LatLon{Lat: filtered[0].Lat, Lon: filtered[0].Lon}
		res.Zoom = RecordZoom
	}

	groups := idm.Partition(filtered)
	for i, t := range idm.FacilityTypes {
		for _, v := range groups[t] {
			res.Layers[i].Markers = append(res.Layers[i].Markers, newMarker(v))
		}
	}
	return res
}

func newMarker(f idm.FacilityRecord) Marker {
	tier := idm.NoData
	var av *float64
	if f.HasAvailability {
		v := f.Availability
		av = &v
		tier = idm.TierOf(v)
	}
	key := fmt.Sprintf("%s|%d|%s|%s|%f|%f",
		f.Department, f.Year, f.Name, f.TypeName, f.Lat, f.Lon)
	return Marker{
		ID:           gnuuid.New(key).String(),
		Name:         f.Name,
		Type:         f.TypeName,
		Availability: av,
		Position:     LatLon{Lat: f.Lat, Lon: f.Lon},
		Color:        idm.BandOfTier(tier).Primary,
		Popup:        popup(f),
	}
}

func popup(f idm.FacilityRecord) string {
	av := "sin dato"
	if f.HasAvailability {
		av = strconv.FormatFloat(f.Availability, 'f', -1, 64) + "%"
	}
	return fmt.Sprintf(
		"<b>Nombre:</b> %s<br><b>Tipo de Establecimiento:</b> %s<br>"+
			"<b>Disponibilidad:</b> %s",
		html.EscapeString(f.Name), html.EscapeString(f.TypeName), av,
	)
}

// Markers returns the number of markers in all layers.
func (m MapVisual) Markers() int {
	var res int
	for _, v := range m.Layers {
		res += len(v.Markers)
	}
	return res
}

// GeoJSON returns markers as a FeatureCollection. Every feature keeps
// its layer name in properties, the view of the map is stored in the
// collection's foreign members.
func (m MapVisual) GeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{
		"center": []float64{m.Center.Lat, m.Center.Lon},
		"zoom":   m.Zoom,
		"layers": m.layerNames(),
	}
	for _, l := range m.Layers {
		for _, v := range l.Markers {
			f := geojson.NewFeature(orb.Point{v.Position.Lon, v.Position.Lat})
			f.ID = v.ID
			f.Properties["layer"] = l.Name
			f.Properties["name"] = v.Name
			f.Properties["type"] = v.Type
			f.Properties["availability"] = v.Availability
			f.Properties["color"] = v.Color
			f.Properties["popup"] = v.Popup
			fc.Append(f)
		}
	}
	res, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("cannot encode geojson: %w", err)
	}
	return res, nil
}

func (m MapVisual) layerNames() []string {
	res := make([]string, len(m.Layers))
	for i, v := range m.Layers {
		res[i] = v.Name
	}
	return res
}
