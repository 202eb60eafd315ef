package ioweb

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/pkg/errcode"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/labstack/echo/v4"
)

func ServerStartError(addr string, err error) error {
	msg := "Cannot start dashboard server at <em>%s</em>"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ServerStartError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot listen on %s: %w", fn.Name(), addr, err),
	}
}

// ErrorResponse is the JSON body of failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := idm.ErrorMessage(err)

	var he *echo.HTTPError
	var gnErr *gn.Error
	switch {
	case errors.As(err, &he):
		code = he.Code
		msg = fmt.Sprint(he.Message)
	case errors.As(err, &gnErr):
		if gnErr.Code == errcode.InvalidSelectionError {
			code = http.StatusBadRequest
		}
	}

	if code >= http.StatusInternalServerError {
		slog.Error("Request failed", "uri", c.Request().RequestURI, "error", err)
	}
	_ = c.JSON(code, ErrorResponse{Message: msg, Code: code})
}
