// Package dashboard recomputes the IDM dashboard for a selection of
// year and department.
//
// A Controller owns the selection state. Every change of the selection
// produces a complete RenderModel: four gauges, the facility map, the
// time-series chart and the shortage ranking. Recompute is pure and
// safe for concurrent use.
package dashboard

import (
	"github.com/gnames/idmdash/pkg/config"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/gnames/idmdash/pkg/render"
)

// Data are all datasets of the dashboard, decoded and immutable.
type Data struct {
	Filters idm.Filters

	// Annual keeps annual index records per gauge scope.
	Annual map[idm.Scope][]idm.AnnualRecord

	// Facilities are empty when GeoErr is set.
	Facilities []idm.FacilityRecord

	// GeoErr is the validation error of the facility dataset. It
	// disables the map for the whole session.
	GeoErr error

	// Series keeps time series per scope.
	Series map[idm.Scope][]idm.SeriesPoint

	Shortages []idm.ShortageRecord
}

// Options are presentation settings of the dashboard.
type Options struct {
	DefaultDepartment string
	// DefaultYear of zero selects the latest year.
	DefaultYear int
	Centering   render.Centering
	PoorFloor   float64
	TopLimit    int
}

// DefaultOptions mirror config defaults.
func DefaultOptions() Options {
	return OptionsFromConfig(config.New())
}

// OptionsFromConfig takes dashboard settings from configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DefaultDepartment: cfg.Dashboard.DefaultDepartment,
		DefaultYear:       cfg.Dashboard.DefaultYear,
		Centering:         render.Centering(cfg.Dashboard.MapCentering),
		PoorFloor:         cfg.Dashboard.PoorFloor,
		TopLimit:          cfg.Dashboard.TopLimit,
	}
}
