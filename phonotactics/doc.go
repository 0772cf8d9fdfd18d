// Package phonotactics builds pronounceable candidate words by sampling
// syllable structures from a per-language profile.
//
// A Profile holds the legal onset, nucleus, and coda segments for one
// language variant. BuildCandidate concatenates randomly drawn syllables
// into a lowercase candidate, capping its length and retrying internally a
// bounded number of times to avoid obviously ugly character runs (triple
// letters and similar). Candidates produced here are purely aesthetic
// guesses; deciding whether a candidate is a real word belongs to the
// dictionary package.
//
// # Usage
//
//	profile := &phonotactics.Profile{
//		Onsets: []string{"", "b", "st"},
//		Nuclei: []string{"a", "ee", "io"},
//		Codas:  []string{"", "n", "rt"},
//	}
//	rng := rand.New(rand.NewSource(42))
//	word, err := phonotactics.BuildCandidate(rng, 1, 3, 10, profile)
//
// All lengths are measured in runes so multibyte profiles (ă, ş, ü, ...)
// behave the same as ASCII ones.
//
// # Error Handling
//
// Construction-time invariants surface as sentinel errors comparable with
// errors.Is: ErrInvalidSyllableRange, ErrInvalidMaxLength, and the profile
// validation errors (ErrEmptyOnsets, ErrEmptyNuclei, ErrEmptyCodas,
// ErrEmptyNucleusEntry, ErrNilProfile).
package phonotactics
