package ioload_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/ioload"
	"github.com/gnames/idmdash/internal/iosnapshot"
	"github.com/gnames/idmdash/pkg/dashboard"
	"github.com/gnames/idmdash/pkg/datasets"
	"github.com/gnames/idmdash/pkg/errcode"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadData(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	m := writeDatasets(t, dir, false)
	l := ioload.NewLoader(ioload.NewXLSX(dir))

	data, err := ioload.LoadData(context.Background(), l, m, 4)
	require.NoError(t, err)
	assert.Equal(len(datasets.Kinds), l.Reads())

	assert.Equal([]int{2023, 2024}, data.Filters.Years)
	assert.Equal([]string{"LIMA", "PUNO"}, data.Filters.Departments)

	v := idm.Lookup(data.Annual[idm.ScopeTotal], 2024, "LIMA")
	assert.Equal(idm.Value{IDM: 87, Found: true}, v)
	v = idm.Lookup(data.Annual[idm.ScopePost], 2024, "PUNO")
	assert.False(v.Found)

	assert.Nil(data.GeoErr)
	require.Len(t, data.Facilities, 2)
	assert.Equal(idm.HealthPost, data.Facilities[1].Type)
	assert.False(data.Facilities[1].HasAvailability)

	assert.Len(data.Series[idm.ScopeHospital], 2)
	assert.Len(data.Shortages, 20)

	c := dashboard.New(data, dashboard.Options{DefaultDepartment: "LIMA"})
	mdl := c.Recompute(c.Selection())
	assert.Len(mdl.Ranking.Rows, 15)
	assert.Equal(2, mdl.Map.Markers())
}

func TestLoadDataGeoError(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	m := writeDatasets(t, dir, true)
	l := ioload.NewLoader(ioload.NewXLSX(dir))

	data, err := ioload.LoadData(context.Background(), l, m, 2)
	require.NoError(t, err)
	require.NotNil(t, data.GeoErr)
	assert.Contains(idm.ErrorMessage(data.GeoErr), "latitud")
	assert.Empty(data.Facilities)

	v := idm.Lookup(data.Annual[idm.ScopeTotal], 2024, "LIMA")
	assert.True(v.Found)
}

func TestLoadDataNoSidebar(t *testing.T) {
	dir := t.TempDir()
	m := writeDatasets(t, dir, false)
	require.NoError(t, os.Remove(filepath.Join(dir, m.Files[datasets.Sidebar])))
	l := ioload.NewLoader(ioload.NewXLSX(dir))

	data, err := ioload.LoadData(context.Background(), l, m, 1)
	require.NoError(t, err)
	assert.Equal(t, idm.DefaultFilters(), data.Filters)
}

func TestLoadDataMissingRequired(t *testing.T) {
	dir := t.TempDir()
	m := writeDatasets(t, dir, false)
	require.NoError(t, os.Remove(filepath.Join(dir, m.Files[datasets.Ranking])))
	l := ioload.NewLoader(ioload.NewXLSX(dir))

	_, err := ioload.LoadData(context.Background(), l, m, 3)
	assert.Error(t, err)
}

func TestLoadDataSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	m := writeDatasets(t, dir, false)

	snap, err := iosnapshot.Open(filepath.Join(dir, "idm.sqlite"))
	require.NoError(t, err)
	defer snap.Close()

	xl := ioload.NewLoader(ioload.NewXLSX(dir))
	tables, err := ioload.LoadTables(ctx, xl, m, 2)
	require.NoError(t, err)
	for k, tbl := range tables {
		require.NoError(t, snap.Write(ctx, string(k), tbl))
	}

	l := ioload.NewLoader(ioload.NewSQLite(snap))
	data, err := ioload.LoadData(ctx, l, m, 2)
	require.NoError(t, err)

	v := idm.Lookup(data.Annual[idm.ScopeHospital], 2024, "LIMA")
	assert.Equal(t, idm.Value{IDM: 92, Found: true}, v)
	assert.Len(t, data.Facilities, 2)
	assert.Len(t, data.Shortages, 20)
}

func TestLoadDataNonFinite(t *testing.T) {
	t.Run("annual index", func(t *testing.T) {
		dir := t.TempDir()
		m := writeDatasets(t, dir, false)
		writeXLSX(t, filepath.Join(dir, m.Files[datasets.AnnualTotal]), [][]any{
			{"departamento", "año", "IDM"},
			{"LIMA", 2024, "inf"},
		})
		l := ioload.NewLoader(ioload.NewXLSX(dir))

		_, err := ioload.LoadData(context.Background(), l, m, 2)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.DataLoadError, gnErr.Code)
	})

	t.Run("facility latitude", func(t *testing.T) {
		dir := t.TempDir()
		m := writeDatasets(t, dir, false)
		writeXLSX(t, filepath.Join(dir, m.Files[datasets.Geo]), [][]any{
			{"establec", "tipo", "dispo", "latitud", "longitud", "año", "departamento"},
			{"Hospital Loayza", "Hospital", 92.5, "inf", -77.04, 2024, "LIMA"},
		})
		l := ioload.NewLoader(ioload.NewXLSX(dir))

		data, err := ioload.LoadData(context.Background(), l, m, 2)
		require.NoError(t, err)
		assert.Error(t, data.GeoErr)
		assert.Empty(t, data.Facilities)
		v := idm.Lookup(data.Annual[idm.ScopeTotal], 2024, "LIMA")
		assert.True(t, v.Found)
	})
}
