package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Table errors
	TableOpenError
	TableReadError
	TableColumnError
	TableValueError
	TableWriteError

	// Validation errors
	ValidationTruthError

	// Plot errors
	PlotRenderError
	PlotSaveError

	// Run errors
	CanceledError
)
