package phonotactics

import "errors"

// Package-specific errors
var (
	// ErrNilProfile is returned when a nil profile is passed to the builder.
	ErrNilProfile = errors.New("phonotactics: profile is nil")

	// ErrEmptyOnsets is returned when a profile has no onset entries.
	ErrEmptyOnsets = errors.New("phonotactics: profile has no onsets")

	// ErrEmptyNuclei is returned when a profile has no nucleus entries.
	ErrEmptyNuclei = errors.New("phonotactics: profile has no nuclei")

	// ErrEmptyCodas is returned when a profile has no coda entries.
	ErrEmptyCodas = errors.New("phonotactics: profile has no codas")

	// ErrEmptyNucleusEntry is returned when a profile contains an empty
	// string as a nucleus; only onsets and codas may be empty.
	ErrEmptyNucleusEntry = errors.New("phonotactics: empty string is not a valid nucleus")

	// ErrInvalidSyllableRange is returned when the syllable bounds are
	// non-positive or min exceeds max.
	ErrInvalidSyllableRange = errors.New("phonotactics: invalid syllable range")

	// ErrInvalidMaxLength is returned when the maximum length is below 1.
	ErrInvalidMaxLength = errors.New("phonotactics: max length must be at least 1")
)
