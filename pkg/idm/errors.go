package idm

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/pkg/errcode"
)

// MissingColumnError is returned when the facility table lacks
// columns the map needs, coordinates in the first place.
func MissingColumnError(name string, cols []string) error {
	msg := "Las columnas %s no existen en <em>%s</em>"
	quoted := make([]string, len(cols))
	for i, v := range cols {
		quoted[i] = "'" + v + "'"
	}
	vars := []any{strings.Join(quoted, " y "), name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: table %s misses columns %s",
			fn.Name(), name, strings.Join(cols, ", ")),
	}
}

// NullCoordinateError is returned when some facilities have no
// latitude or longitude.
func NullCoordinateError(name string, rows []int) error {
	msg := "Hay valores nulos en las columnas 'latitud' y 'longitud' " +
		"(%d filas en <em>%s</em>)"
	vars := []any{len(rows), name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NullCoordinateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: table %s has null coordinates in %d rows",
			fn.Name(), name, len(rows)),
	}
}

// ErrorMessage renders a gn.Error as a plain user message without
// markup, other errors are returned as is.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(*gn.Error); ok && e.Msg != "" {
		res := fmt.Sprintf(e.Msg, e.Vars...)
		r := strings.NewReplacer("<em>", "", "</em>", "")
		return r.Replace(res)
	}
	return err.Error()
}
