package ioload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/pkg/errcode"
)

// DataLoadError is returned when a dataset cannot be read or lacks the
// requested columns. It stops the application start.
func DataLoadError(name string, err error) error {
	msg := `Cannot load dataset <em>%s</em>

<em>Possible causes:</em>
  - File does not exist or is not an xlsx spreadsheet
  - A required column is missing from the first worksheet
  - The snapshot was not created, run <em>idmdash snapshot</em>`
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DataLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot load %s: %w", fn.Name(), name, err),
	}
}
