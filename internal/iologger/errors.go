package iologger

import (
	"fmt"
	"runtime"

	"github.com/aprl-ssp/ctypes/pkg/errcode"
	"github.com/gnames/gn"
)

func CreateLogFileError(path string, err error) error {
	msg := "Cannot open log file <em>%s</em>, " +
		"try CTYPES_LOG_DESTINATION=stderr"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create %s: %w", fn, path, err),
	}
}
