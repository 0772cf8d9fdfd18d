package dictionary

import (
	"log/slog"
	"strings"

	"golang.org/x/text/language"
)

// Lookup resolves a word to its Zipf frequency score for a language.
// A score of 0 means the word was not found; implementations return an
// error only when the language itself is unsupported or the underlying
// data source fails.
type Lookup interface {
	Zipf(word string, tag language.Tag) (float64, error)
}

// Frequency flags words whose corpus frequency meets a minimum Zipf score
// (logarithmic; a lower threshold is more permissive).
//
// The backend probes its lookup once at construction. If the lookup is
// missing or does not support the language, the backend marks itself
// unavailable and every query returns false instead of raising; if a query
// fails unexpectedly at runtime, the backend permanently disables itself
// and logs the incident. Either way callers are never interrupted.
type Frequency struct {
	lookup    Lookup
	tag       language.Tag
	minZipf   float64
	available bool
	disabled  bool
	log       *slog.Logger
}

// FrequencyOption configures a Frequency backend.
type FrequencyOption func(*Frequency)

// WithFrequencyLogger sets the logger used for degradation warnings.
// Nil loggers are ignored.
func WithFrequencyLogger(log *slog.Logger) FrequencyOption {
	return func(f *Frequency) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFrequency builds a frequency backend for the given language and
// threshold. Construction never fails: an unusable lookup yields a backend
// with Available() == false that flags nothing.
func NewFrequency(lookup Lookup, tag language.Tag, minZipf float64, opts ...FrequencyOption) *Frequency {
	f := &Frequency{
		lookup:  lookup,
		tag:     tag,
		minZipf: minZipf,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if lookup == nil {
		f.log.Warn("frequency lookup not configured; backend will not flag words",
			"language", tag.String())
		return f
	}
	if _, err := lookup.Zipf("probe", tag); err != nil {
		f.log.Warn("frequency corpus unavailable; backend will not flag words",
			"language", tag.String(), "error", err)
		return f
	}

	f.available = true
	return f
}

// Available reports whether the construction-time probe succeeded.
func (f *Frequency) Available() bool {
	return f.available
}

// IsRealWord reports whether the word's Zipf score meets the threshold.
// Returns false for unavailable or disabled backends and disables the
// backend permanently on an unexpected lookup failure.
func (f *Frequency) IsRealWord(word string) bool {
	if !f.available || f.disabled {
		return false
	}
	score, err := f.lookup.Zipf(strings.ToLower(word), f.tag)
	if err != nil {
		f.disabled = true
		f.log.Warn("frequency lookup failed; disabling backend",
			"language", f.tag.String(), "word", word, "error", err)
		return false
	}
	return score >= f.minZipf
}
