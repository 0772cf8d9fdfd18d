package generator

import "errors"

// Package-specific errors
var (
	// ErrNilPlugin is returned when New is called without a language
	// plugin.
	ErrNilPlugin = errors.New("generator: language plugin is nil")

	// ErrInvalidLengthRange is returned when the word length bounds are
	// non-positive or min exceeds max.
	ErrInvalidLengthRange = errors.New("generator: invalid length range")

	// ErrInvalidSyllableRange is returned when the syllable bounds are
	// non-positive or min exceeds max.
	ErrInvalidSyllableRange = errors.New("generator: invalid syllable range")

	// ErrInvalidAttempts is returned when GenerateOne is called with a
	// budget below 1.
	ErrInvalidAttempts = errors.New("generator: max attempts must be at least 1")

	// ErrInvalidCount is returned when GenerateMany is called with a
	// count below 1.
	ErrInvalidCount = errors.New("generator: count must be at least 1")

	// ErrAttemptsExhausted is returned when no candidate satisfied every
	// filter within the attempt budget. This is an expected, catchable
	// condition when constraints are tight; callers should relax them.
	ErrAttemptsExhausted = errors.New("generator: attempt budget exhausted")

	// ErrUniqueExhausted is returned by GenerateMany(count, true) when
	// the generator keeps producing duplicates, which means the
	// achievable unique-word space is too small for the request.
	ErrUniqueExhausted = errors.New("generator: unique word space exhausted")
)
