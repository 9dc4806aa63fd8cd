package iovalidate

import (
	"fmt"
	"runtime"

	"github.com/aprl-ssp/ctypes/pkg/errcode"
	"github.com/gnames/gn"
)

func TruthError(path string, err error) error {
	msg := "Atom counts in <em>%s</em> cannot be used for validation"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValidationTruthError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad ground truth %s: %w", fn, path, err),
	}
}

func CanceledError(err error) error {
	msg := "Validation was canceled"

	return &gn.Error{
		Code: errcode.CanceledError,
		Msg:  msg,
		Err:  fmt.Errorf("validation canceled: %w", err),
	}
}
