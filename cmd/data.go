/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/iodatasets"
	"github.com/gnames/idmdash/internal/ioload"
	"github.com/gnames/idmdash/internal/iosnapshot"
	"github.com/gnames/idmdash/pkg/config"
	"github.com/gnames/idmdash/pkg/dashboard"
	"github.com/gnames/idmdash/pkg/datasets"
	"github.com/gnames/idmdash/pkg/idm"
)

// newLoader creates a loader for the configured backend. The returned
// function releases the storage.
func newLoader(cfg *config.Config) (*ioload.Loader, func(), error) {
	if cfg.Data.Backend != "sqlite" {
		return ioload.NewLoader(ioload.NewXLSX(cfg.Data.Dir)), func() {}, nil
	}

	path := cfg.SnapshotFilePath()
	if _, err := os.Stat(path); err != nil {
		return nil, nil, iosnapshot.SnapshotOpenError(path, err)
	}
	snap, err := iosnapshot.Open(path)
	if err != nil {
		return nil, nil, err
	}
	closer := func() { _ = snap.Close() }
	return ioload.NewLoader(ioload.NewSQLite(snap)), closer, nil
}

// loadManifest reads datasets.yaml from the config directory.
func loadManifest(cfg *config.Config) (*datasets.Manifest, error) {
	return iodatasets.New(cfg).Load()
}

// loadData reads and decodes all datasets. A broken facility table is
// reported to the user but does not stop the dashboard.
func loadData(
	ctx context.Context,
	cfg *config.Config,
) (*dashboard.Data, error) {
	m, err := loadManifest(cfg)
	if err != nil {
		return nil, err
	}

	l, done, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}
	defer done()

	res, err := ioload.LoadData(ctx, l, m, cfg.JobsNumber)
	if err != nil {
		return nil, err
	}
	if res.GeoErr != nil {
		gn.Warn("<warn>Map is disabled</warn>: %s", idm.ErrorMessage(res.GeoErr))
	}
	return res, nil
}

// newController creates the dashboard controller with configured and
// flag options.
func newController(data *dashboard.Data, cfg *config.Config) *dashboard.Controller {
	return dashboard.New(data, dashboard.OptionsFromConfig(cfg))
}
