package dictionary

import "errors"

// Package-specific errors
var (
	// ErrEmptyWordSet is returned when a static backend is constructed
	// from an empty word list.
	ErrEmptyWordSet = errors.New("dictionary: static backend requires at least one word")

	// ErrNoBackends is returned when a composite backend is constructed
	// with zero constituents.
	ErrNoBackends = errors.New("dictionary: composite backend requires at least one backend")
)
