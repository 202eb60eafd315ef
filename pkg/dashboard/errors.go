package dashboard

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/pkg/errcode"
	"github.com/go-playground/validator/v10"
)

// InvalidSelectionError is returned when a selection is outside of the
// offered years or departments.
func InvalidSelectionError(sel Selection, err error) error {
	msg := "Selection year <em>%d</em>, department <em>%s</em> is not valid: %s"
	vars := []any{sel.Year, sel.Department, fieldNames(err)}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidSelectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid selection %d/%s: %w",
			fn.Name(), sel.Year, sel.Department, err),
	}
}

// RenderError is returned when a visual cannot be drawn.
func RenderError(what string, err error) error {
	msg := "Cannot render <em>%s</em>"
	vars := []any{what}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot render %s: %w", fn.Name(), what, err),
	}
}

func fieldNames(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "unknown"
	}
	res := make([]string, len(verrs))
	for i, v := range verrs {
		res[i] = strings.ToLower(v.Field())
	}
	return strings.Join(res, ", ")
}
