package lang

import "errors"

// Package-specific errors
var (
	// ErrEmptyName is returned when a plugin definition has no name.
	ErrEmptyName = errors.New("lang: plugin name must not be empty")

	// ErrInvalidCode is returned when a plugin definition carries a
	// language code that does not parse as a BCP-47 tag.
	ErrInvalidCode = errors.New("lang: invalid language code")

	// ErrUnknownLanguage is returned by registry lookups for names that
	// were never registered; the message enumerates the valid names.
	ErrUnknownLanguage = errors.New("lang: unknown language")

	// ErrUnknownStrictness is returned when parsing an unrecognized
	// strictness name.
	ErrUnknownStrictness = errors.New("lang: unknown strictness")
)
