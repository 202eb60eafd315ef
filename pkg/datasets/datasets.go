// Package datasets describes datasets.yaml, the manifest that tells
// idmdash which files hold the pre-aggregated IDM data.
//
// Each dataset has a Kind. Kinds are fixed, file names are not: the
// manifest maps every kind to a file inside the data directory.
package datasets

import (
	"path/filepath"

	"github.com/gnames/idmdash/pkg/idm"
)

// Manifests loads and validates datasets.yaml.
type Manifests interface {
	Load() (*Manifest, error)
}

// Kind identifies a dataset by its role in the dashboard.
type Kind string

const (
	Sidebar        Kind = "sidebar"
	AnnualTotal    Kind = "annual_total"
	AnnualHospital Kind = "annual_hospital"
	AnnualCenter   Kind = "annual_center"
	AnnualPost     Kind = "annual_post"
	Geo            Kind = "geo"
	SeriesHospital Kind = "series_hospital"
	SeriesCenter   Kind = "series_center"
	SeriesPost     Kind = "series_post"
	Ranking        Kind = "ranking"
)

// Kinds lists all dataset kinds in load order.
var Kinds = []Kind{
	Sidebar,
	AnnualTotal, AnnualHospital, AnnualCenter, AnnualPost,
	Geo,
	SeriesHospital, SeriesCenter, SeriesPost,
	Ranking,
}

// AnnualKinds maps gauge scopes to their annual datasets.
var AnnualKinds = map[idm.Scope]Kind{
	idm.ScopeTotal:    AnnualTotal,
	idm.ScopeHospital: AnnualHospital,
	idm.ScopeCenter:   AnnualCenter,
	idm.ScopePost:     AnnualPost,
}

// SeriesKinds maps series scopes to their time-series datasets.
var SeriesKinds = map[idm.Scope]Kind{
	idm.ScopeHospital: SeriesHospital,
	idm.ScopeCenter:   SeriesCenter,
	idm.ScopePost:     SeriesPost,
}

// Optional reports whether the dashboard works without the dataset.
func (k Kind) Optional() bool {
	return k == Sidebar
}

// Columns returns the column subset the loader keeps for the kind.
// Nil means all columns: the facility table is validated column by
// column, ranking counts and sidebar filters are optional.
func (k Kind) Columns() []string {
	switch k {
	case AnnualTotal, AnnualHospital, AnnualCenter, AnnualPost:
		return idm.AnnualColumns
	case SeriesHospital, SeriesCenter, SeriesPost:
		return idm.SeriesColumns
	default:
		return nil
	}
}

// Manifest represents the complete datasets.yaml file.
type Manifest struct {
	// Files maps dataset kinds to file names relative to the data
	// directory. Absolute paths are kept as is.
	Files map[Kind]string `yaml:"files"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal manifest issue.
type ValidationWarning struct {
	Kind       Kind   // Dataset kind with the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// Default returns the manifest with the file names of the original
// IDM data release.
func Default() *Manifest {
	return &Manifest{
		Files: map[Kind]string{
			Sidebar:        "sidebar.xlsx",
			AnnualTotal:    "IDM_anual.xlsx",
			AnnualHospital: "IDM_anual_hospitales.xlsx",
			AnnualCenter:   "IDM_anual_centros.xlsx",
			AnnualPost:     "IDM_anual_puestos.xlsx",
			Geo:            "geo_idm_anual.xlsx",
			SeriesHospital: "data_lineplot_hosp.xlsx",
			SeriesCenter:   "data_lineplot_centros.xlsx",
			SeriesPost:     "data_lineplot_puestos.xlsx",
			Ranking:        "ranking_medicamentos_desabastecidos.xlsx",
		},
	}
}

// Path returns the location of a dataset file, or an empty string if
// the manifest does not list the kind.
func (m *Manifest) Path(dir string, k Kind) string {
	f, ok := m.Files[k]
	if !ok || f == "" {
		return ""
	}
	if filepath.IsAbs(f) {
		return f
	}
	return filepath.Join(dir, f)
}
