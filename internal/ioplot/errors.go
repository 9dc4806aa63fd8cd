package ioplot

import (
	"fmt"
	"runtime"

	"github.com/aprl-ssp/ctypes/pkg/errcode"
	"github.com/gnames/gn"
)

func RenderError(figure string, err error) error {
	msg := "Cannot render <em>%s</em> plot"
	vars := []any{figure}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PlotRenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot render %s: %w", fn, figure, err),
	}
}

func SaveError(path string, err error) error {
	msg := "Cannot save plot to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PlotSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot save %s: %w", fn, path, err),
	}
}
