package ioload

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/idmdash/pkg/dashboard"
	"github.com/gnames/idmdash/pkg/datasets"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/gnames/idmdash/pkg/table"
	"golang.org/x/sync/errgroup"
)

var errNotListed = errors.New("dataset is not listed in the manifest")

// LoadTables reads every dataset of the manifest concurrently, at most
// jobs at a time. An optional dataset that cannot be read is skipped
// with a warning.
func LoadTables(
	ctx context.Context,
	l *Loader,
	m *datasets.Manifest,
	jobs int,
) (map[datasets.Kind]*table.Table, error) {
	if jobs < 1 {
		jobs = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	var mu sync.Mutex
	res := make(map[datasets.Kind]*table.Table, len(datasets.Kinds))

	for _, k := range datasets.Kinds {
		name := l.Source().Locate(m, k)
		if name == "" {
			continue
		}
		g.Go(func() error {
			t, err := l.Load(ctx, name, k.Columns()...)
			if err != nil {
				if k.Optional() {
					slog.Warn("Optional dataset is skipped",
						"kind", k, "name", name, "error", err)
					return nil
				}
				return err
			}
			mu.Lock()
			res[k] = t
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// LoadData reads and decodes all datasets of the dashboard. Problems of
// the facility table do not stop loading, they are kept in
// dashboard.Data.GeoErr.
func LoadData(
	ctx context.Context,
	l *Loader,
	m *datasets.Manifest,
	jobs int,
) (*dashboard.Data, error) {
	start := time.Now()
	tables, err := LoadTables(ctx, l, m, jobs)
	if err != nil {
		return nil, err
	}
	for _, k := range datasets.Kinds {
		if _, ok := tables[k]; !ok && !k.Optional() {
			return nil, DataLoadError(string(k), errNotListed)
		}
	}

	res := &dashboard.Data{
		Annual: make(map[idm.Scope][]idm.AnnualRecord),
		Series: make(map[idm.Scope][]idm.SeriesPoint),
	}

	if res.Filters, err = idm.DecodeFilters(tables[datasets.Sidebar]); err != nil {
		return nil, DataLoadError(string(datasets.Sidebar), err)
	}

	for _, s := range idm.Scopes {
		t := tables[datasets.AnnualKinds[s]]
		recs, err := idm.DecodeAnnual(t)
		if err != nil {
			return nil, DataLoadError(t.Name, err)
		}
		for _, v := range idm.Duplicates(recs) {
			slog.Warn("Duplicate annual IDM, the first row is used",
				"name", t.Name, "department", v.Department, "year", v.Year)
		}
		res.Annual[s] = recs
	}

	for _, s := range idm.SeriesScopes {
		t := tables[datasets.SeriesKinds[s]]
		pts, err := idm.DecodeSeries(t)
		if err != nil {
			return nil, DataLoadError(t.Name, err)
		}
		res.Series[s] = pts
	}

	t := tables[datasets.Ranking]
	if res.Shortages, err = idm.DecodeShortages(t); err != nil {
		return nil, DataLoadError(t.Name, err)
	}

	t = tables[datasets.Geo]
	res.Facilities, err = idm.DecodeFacilities(t)
	if err != nil {
		res.Facilities = nil
		res.GeoErr = err
		slog.Error("Facility map is disabled", "name", t.Name, "error", err)
	}

	slog.Info("Datasets decoded",
		"datasets", len(tables),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}
