package ioload_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/gnames/idmdash/pkg/datasets"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeXLSX saves rows to the first worksheet of a new workbook.
func writeXLSX(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		err = f.SetSheetRow(sheet, cell, &row)
		require.NoError(t, err)
	}
	require.NoError(t, f.SaveAs(path))
}

// writeDatasets creates all datasets of the default manifest in dir.
// With nullLat the facility table gets a row without latitude.
func writeDatasets(t *testing.T, dir string, nullLat bool) *datasets.Manifest {
	t.Helper()
	m := datasets.Default()
	path := func(k datasets.Kind) string {
		return filepath.Join(dir, m.Files[k])
	}

	writeXLSX(t, path(datasets.Sidebar), [][]any{
		{"departamento", "año"},
		{"LIMA", 2023},
		{"PUNO", 2024},
		{"LIMA", 2024},
	})

	annual := map[datasets.Kind]float64{
		datasets.AnnualTotal:    87.4,
		datasets.AnnualHospital: 92.5,
		datasets.AnnualCenter:   64.6,
		datasets.AnnualPost:     30,
	}
	for k, v := range annual {
		writeXLSX(t, path(k), [][]any{
			{"departamento", "año", "IDM", "extra"},
			{"LIMA", 2024, v, "x"},
			{"LIMA", 2024, 10, "duplicate"},
			{"PUNO", 2023, 55, "y"},
		})
	}

	lat := any(-12.05)
	if nullLat {
		lat = ""
	}
	writeXLSX(t, path(datasets.Geo), [][]any{
		{"establec", "tipo", "dispo", "latitud", "longitud", "año", "departamento"},
		{"Hospital Loayza", "Hospital", 92.5, lat, -77.04, 2024, "LIMA"},
		{"PS Huaral", "Puesto de Salud", "", -11.49, -77.2, 2024, "LIMA"},
	})

	for i, k := range []datasets.Kind{
		datasets.SeriesHospital, datasets.SeriesCenter, datasets.SeriesPost,
	} {
		writeXLSX(t, path(k), [][]any{
			{"departamento", "date", "idm"},
			{"LIMA", "2023-02-01", 80 + i},
			{"LIMA", "2023-01-01", 70 + i},
		})
	}

	ranking := [][]any{{"departamento", "año", "nombre_med_grupo", "desabastecimientos"}}
	for i := range 20 {
		ranking = append(ranking,
			[]any{"LIMA", 2024, fmt.Sprintf("Grupo %02d", i+1), 100 - i})
	}
	writeXLSX(t, path(datasets.Ranking), ranking)
	return m
}
