package iosnapshot_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/iosnapshot"
	"github.com/gnames/idmdash/pkg/errcode"
	"github.com/gnames/idmdash/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "idm.sqlite")

	s, err := iosnapshot.Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(path, s.Path())

	tbl := table.New("data/IDM_anual.xlsx",
		[]string{"departamento", "año", "IDM", `odd "name"`},
		[][]string{
			{"LIMA", "2024", "87.4", "x"},
			{"PUNO", "2024", "", "y"},
			{"CUSCO", "2023", "NaN"},
		})

	err = s.Write(ctx, "annual_total", tbl)
	require.NoError(t, err)
	// writing twice replaces the dataset
	err = s.Write(ctx, "annual_total", tbl)
	require.NoError(t, err)

	res, err := s.Read(ctx, "annual_total")
	require.NoError(t, err)
	assert.Equal("annual_total", res.Name)
	assert.Equal(tbl.Columns, res.Columns)
	require.Equal(t, 3, res.Len())
	assert.Equal("LIMA", res.Cell(0, "departamento"))
	assert.Equal("87.4", res.Cell(0, "IDM"))
	assert.True(res.IsNull(1, "IDM"))
	assert.True(res.IsNull(2, "IDM"))
	assert.Equal("CUSCO", res.Cell(2, "departamento"))

	es, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(iosnapshot.Entry{
		Name: "annual_total", Source: "data/IDM_anual.xlsx", Rows: 3,
	}, es[0])
}

func TestReadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idm.sqlite")
	s, err := iosnapshot.Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Read(context.Background(), "geo")
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.SnapshotReadError, gnErr.Code)
}

func TestWriteNoColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idm.sqlite")
	s, err := iosnapshot.Open(path)
	require.NoError(t, err)
	defer s.Close()

	err = s.Write(context.Background(), "empty", table.New("empty", nil, nil))
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.SnapshotWriteError, gnErr.Code)
}

func TestWriteReadRawText(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s, err := iosnapshot.Open(filepath.Join(t.TempDir(), "idm.sqlite"))
	require.NoError(t, err)
	defer s.Close()

	tbl := table.New("ranking.xlsx",
		[]string{"nombre_med_grupo", "nombre_med_grupo", "Nombre_Med_Grupo", ""},
		[][]string{
			{"NA", "a", "b", "c"},
			{"None", "d", "e", "f"},
			{"n/a", "", "", ""},
		})
	err = s.Write(ctx, "ranking", tbl)
	require.NoError(t, err)

	res, err := s.Read(ctx, "ranking")
	require.NoError(t, err)
	assert.Equal([]string{
		"nombre_med_grupo", "nombre_med_grupo_2", "Nombre_Med_Grupo_3", "column_4",
	}, res.Columns)
	assert.Equal([][]string{
		{"NA", "a", "b", "c"},
		{"None", "d", "e", "f"},
		{"n/a", "", "", ""},
	}, res.Rows)
	assert.Equal("NA", res.Cell(0, "nombre_med_grupo"))
}
