package iotable

import (
	"fmt"
	"runtime"

	"github.com/aprl-ssp/ctypes/pkg/errcode"
	"github.com/gnames/gn"
)

func OpenError(path string, err error) error {
	msg := "Cannot open table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot parse CSV table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn, path, err),
	}
}

func ColumnError(path, column string) error {
	msg := "Table <em>%s</em> has no <em>%s</em> column"
	vars := []any{path, column}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %q is missing in %s",
			fn, column, path),
	}
}

func ValueError(path string, line int, column, value string, err error) error {
	msg := "Bad value <em>%s</em> in column <em>%s</em>, line %d of <em>%s</em>"
	vars := []any{value, column, line, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableValueError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: bad value %q in %s:%d: %w",
			fn, value, path, line, err),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}
