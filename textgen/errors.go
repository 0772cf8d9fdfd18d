package textgen

import "errors"

// Package-specific errors
var (
	// ErrNilGenerator is returned when New is called without a word
	// generator.
	ErrNilGenerator = errors.New("textgen: word generator is nil")

	// ErrNoPunctuation is returned when the punctuation set is emptied
	// via WithPunctuation.
	ErrNoPunctuation = errors.New("textgen: at least one punctuation mark is required")

	// ErrInvalidWordRange is returned when sentence word-count bounds
	// are non-positive or min exceeds max.
	ErrInvalidWordRange = errors.New("textgen: invalid word count range")

	// ErrInvalidSentenceRange is returned when paragraph sentence-count
	// bounds are non-positive or min exceeds max.
	ErrInvalidSentenceRange = errors.New("textgen: invalid sentence count range")

	// ErrInvalidCount is returned when a batch helper is asked for fewer
	// than one item.
	ErrInvalidCount = errors.New("textgen: count must be at least 1")
)
