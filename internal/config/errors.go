package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidLengthWindow is returned when the minimum length exceeds
	// the maximum length.
	ErrInvalidLengthWindow = errors.New("invalid length window: --min-length exceeds --max-length")

	// ErrInvalidMinLength is returned when the minimum length is not
	// positive. Zero-length candidates are never useful.
	ErrInvalidMinLength = errors.New("invalid minimum length: must be positive")

	// ErrInvalidChunkSize is returned when the chunk size is not
	// positive. A zero chunk would never flush.
	ErrInvalidChunkSize = errors.New("invalid chunk size: must be positive")

	// ErrNegativeLimit is returned when the candidate limit is negative.
	// Use zero for unlimited.
	ErrNegativeLimit = errors.New("invalid limit: must be non-negative")

	// ErrNegativeMaxWords is returned when the maximum combination size
	// is negative. Use zero for unlimited.
	ErrNegativeMaxWords = errors.New("invalid max words: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoOutputPath is returned when the output path is empty.
	ErrNoOutputPath = errors.New("no output path specified")
)
