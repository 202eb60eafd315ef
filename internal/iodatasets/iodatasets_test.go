package iodatasets_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/iodatasets"
	"github.com/gnames/idmdash/internal/iofs"
	"github.com/gnames/idmdash/pkg/config"
	"github.com/gnames/idmdash/pkg/datasets"
	"github.com/gnames/idmdash/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureDatasetsFile(home))

	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})
	m, err := iodatasets.New(cfg).Load()
	require.NoError(t, err)
	assert.Equal(t, datasets.Default().Files, m.Files)
	assert.Empty(t, m.Warnings)
}

func TestLoadManifest(t *testing.T) {
	tests := []struct {
		msg      string
		yaml     string
		hasErr   bool
		warnings int
	}{
		{"no sidebar", `files:
  annual_total: a.xlsx
  annual_hospital: b.xlsx
  annual_center: c.xlsx
  annual_post: d.xlsx
  geo: geo.xlsx
  series_hospital: e.xlsx
  series_center: f.xlsx
  series_post: g.xlsx
  ranking: r.csv
  extra: x.xlsx
`, false, 3},
		{"missing geo", `files:
  annual_total: a.xlsx
`, true, 0},
		{"bad yaml", "files: [", true, 0},
	}

	for _, v := range tests {
		path := filepath.Join(t.TempDir(), "datasets.yaml")
		err := os.WriteFile(path, []byte(v.yaml), 0644)
		require.NoError(t, err)

		m, err := iodatasets.LoadManifest(path)
		if v.hasErr {
			assert.Error(t, err, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Len(t, m.Warnings, v.warnings, v.msg)
	}
}

func TestLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	_, err := iodatasets.NewFromPath(path).Load()
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.DatasetsConfigError, gnErr.Code)
	assert.Equal(t, []any{path, path}, gnErr.Vars)
}
