// Package ioexport writes a static copy of the dashboard for one
// selection: the HTML page, SVG visuals, GeoJSON and the render model.
package ioexport

import (
	"bytes"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnfmt"
	"github.com/gnames/idmdash/internal/iofs"
	"github.com/gnames/idmdash/pkg/dashboard"
	"github.com/gnames/idmdash/pkg/idm"
)

// File names of an export.
const (
	PageFile       = "index.html"
	TimeSeriesFile = "timeseries.svg"
	MapFile        = "map.geojson"
	ModelFile      = "model.json"
)

// GaugeFile returns the name of the SVG of a gauge scope.
func GaugeFile(scope string) string {
	return "gauge-" + scope + ".svg"
}

type step struct {
	name string
	data func() ([]byte, error)
}

// Export writes files of a render model to dir and returns their
// names. The map is skipped when the facility dataset is invalid.
func Export(
	m dashboard.RenderModel,
	f idm.Filters,
	dir string,
	bar bool,
) ([]string, error) {
	steps := steps(m, f)

	var pbar *pb.ProgressBar
	if bar {
		pbar = NewProgressBar(len(steps), "Exporting: ")
		defer pbar.Finish()
	}

	res := make([]string, 0, len(steps))
	for _, v := range steps {
		data, err := v.data()
		if err != nil {
			return res, dashboard.RenderError(v.name, err)
		}
		if err = iofs.WriteFile(dir, v.name, data); err != nil {
			return res, err
		}
		res = append(res, v.name)
		if pbar != nil {
			pbar.Increment()
		}
	}

	slog.Info("Dashboard exported",
		"dir", dir,
		"year", m.Selection.Year,
		"department", m.Selection.Department,
		"files", len(res),
	)
	return res, nil
}

func steps(m dashboard.RenderModel, f idm.Filters) []step {
	var res []step
	res = append(res, step{
		name: PageFile,
		data: func() ([]byte, error) {
			var buf bytes.Buffer
			err := dashboard.Page(&buf, m, f, true)
			return buf.Bytes(), err
		},
	})

	for _, g := range m.Gauges {
		res = append(res, step{name: GaugeFile(g.Scope), data: g.SVG})
	}

	res = append(res, step{name: TimeSeriesFile, data: m.TimeSeries.SVG})

	if m.MapError == "" {
		res = append(res, step{name: MapFile, data: m.Map.GeoJSON})
	}

	res = append(res, step{
		name: ModelFile,
		data: func() ([]byte, error) {
			enc := gnfmt.GNjson{Pretty: true}
			return enc.Encode(m)
		},
	})
	return res
}

// NewProgressBar creates a new progress bar with consistent
// settings.
func NewProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
