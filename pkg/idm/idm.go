// Package idm holds the domain of the Medicine Availability Index
// (IDM, Índice de Disponibilidad de Medicamentos): the records read from
// pre-aggregated datasets, index lookups, color banding and the filters
// the dashboard applies for a (year, department) selection.
//
// Everything here is pure. Records are decoded from table.Table values
// and never change afterwards.
package idm

// Column names used by the pre-aggregated datasets.
const (
	ColDepartment    = "departamento"
	ColYear          = "año"
	ColIDM           = "IDM"
	ColSeriesIDM     = "idm"
	ColDate          = "date"
	ColFacility      = "establec"
	ColType          = "tipo"
	ColAvailability  = "dispo"
	ColLatitude      = "latitud"
	ColLongitude     = "longitud"
	ColMedicineGroup = "nombre_med_grupo"
	ColShortages     = "desabastecimientos"
)

// AnnualColumns are read from the four annual IDM tables.
var AnnualColumns = []string{ColDepartment, ColYear, ColIDM}

// SeriesColumns are read from the three time-series tables.
var SeriesColumns = []string{ColDepartment, ColDate, ColSeriesIDM}

// GeoColumns are required in the facility table.
var GeoColumns = []string{
	ColFacility, ColType, ColAvailability,
	ColLatitude, ColLongitude, ColYear, ColDepartment,
}

// RankingColumns are required in the shortage ranking table, the
// shortage count column is optional.
var RankingColumns = []string{ColDepartment, ColYear, ColMedicineGroup}
