package idm

import "time"

// Scope identifies which facilities an index value summarizes.
type Scope int

const (
	ScopeTotal Scope = iota
	ScopeHospital
	ScopeCenter
	ScopePost
)

// Scopes lists gauge scopes in display order.
var Scopes = []Scope{ScopeTotal, ScopeHospital, ScopeCenter, ScopePost}

// SeriesScopes lists scopes that have a time series.
var SeriesScopes = []Scope{ScopeHospital, ScopeCenter, ScopePost}

var scopeNames = map[Scope]string{
	ScopeTotal:    "total",
	ScopeHospital: "hospital",
	ScopeCenter:   "center",
	ScopePost:     "post",
}

// String returns the identifier used in URLs and file names.
func (s Scope) String() string {
	if res, ok := scopeNames[s]; ok {
		return res
	}
	return "unknown"
}

// Label is the gauge caption.
func (s Scope) Label() string {
	switch s {
	case ScopeTotal:
		return "IDM total"
	case ScopeHospital:
		return "Hospitales"
	case ScopeCenter:
		return "Centros de salud"
	case ScopePost:
		return "Puestos de salud"
	default:
		return ""
	}
}

// SeriesLabel tags rows of the time-series chart.
func (s Scope) SeriesLabel() string {
	switch s {
	case ScopeHospital:
		return "Hospitales"
	case ScopeCenter:
		return "Centros de Salud"
	case ScopePost:
		return "Puestos de salud"
	default:
		return s.Label()
	}
}

// ParseScope converts an identifier back to Scope.
func ParseScope(s string) (Scope, bool) {
	for k, v := range scopeNames {
		if v == s {
			return k, true
		}
	}
	return 0, false
}

// FacilityType is the kind of a health facility.
type FacilityType int

const (
	Hospital FacilityType = iota
	HealthCenter
	HealthPost
	Other
)

// FacilityTypes lists facility types in the order of map layers.
var FacilityTypes = []FacilityType{Hospital, HealthCenter, HealthPost, Other}

// String returns the name of the map layer for the type.
func (f FacilityType) String() string {
	switch f {
	case Hospital:
		return "Hospital"
	case HealthCenter:
		return "Centro de salud"
	case HealthPost:
		return "Puesto de Salud"
	default:
		return "Otro"
	}
}

// Classify maps the verbatim 'tipo' value of a facility to its type.
// Matching is exact, anything unknown is Other.
func Classify(tipo string) FacilityType {
	switch tipo {
	case "Hospital":
		return Hospital
	case "Centro de salud":
		return HealthCenter
	case "Puesto de Salud":
		return HealthPost
	default:
		return Other
	}
}

// AnnualRecord is the IDM of a department for a year, for one scope.
type AnnualRecord struct {
	Department string
	Year       int
	IDM        float64
}

// FacilityRecord is the availability of medicines in one facility.
type FacilityRecord struct {
	Name     string
	Type     FacilityType
	TypeName string
	// Availability is the percentage of available medicines, it is
	// meaningful only if HasAvailability is true.
	Availability    float64
	HasAvailability bool
	Lat             float64
	Lon             float64
	Year            int
	Department      string
}

// SeriesPoint is one observation of a time series.
type SeriesPoint struct {
	Department string
	Date       time.Time
	IDM        float64
}

// ShortageRecord tells how often a medicine group was out of stock.
type ShortageRecord struct {
	Department    string
	Year          int
	MedicineGroup string
	// Count is nil when the dataset has no count for the group.
	Count *float64
}
