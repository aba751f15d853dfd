package model

import "errors"

// Input validation errors shared by the counter and the assembler.
// Both are fatal and reported before any counting or generation starts.
var (
	// ErrEmptyWordSet is returned when the word set has no entries.
	ErrEmptyWordSet = errors.New("no words provided")

	// ErrInvalidLengthWindow is returned when the minimum length exceeds
	// the maximum length.
	ErrInvalidLengthWindow = errors.New("invalid length window: min length exceeds max length")
)
