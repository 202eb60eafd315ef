package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	TemplateFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Datasets manifest errors
	DatasetsConfigError
	DatasetsValidationError

	// Data loading errors
	DataLoadError
	MissingColumnError
	NullCoordinateError

	// Snapshot errors
	SnapshotOpenError
	SnapshotWriteError
	SnapshotReadError

	// Dashboard errors
	InvalidSelectionError
	RenderError

	// Web server errors
	ServerStartError
)
