package iosnapshot

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/pkg/errcode"
)

func SnapshotOpenError(path string, err error) error {
	msg := "Cannot open snapshot <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn.Name(), path, err),
	}
}

func SnapshotWriteError(name string, err error) error {
	msg := "Cannot save dataset <em>%s</em> to snapshot"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write table %s: %w", fn.Name(), name, err),
	}
}

func SnapshotReadError(name string, err error) error {
	msg := "Cannot read dataset <em>%s</em> from snapshot"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SnapshotReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read table %s: %w", fn.Name(), name, err),
	}
}
