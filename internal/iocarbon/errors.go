package iocarbon

import (
	"fmt"

	"github.com/aprl-ssp/ctypes/pkg/errcode"
	"github.com/gnames/gn"
)

func CanceledError(err error) error {
	msg := "Generation of carbon types was canceled"

	return &gn.Error{
		Code: errcode.CanceledError,
		Msg:  msg,
		Err:  fmt.Errorf("carbon types canceled: %w", err),
	}
}
