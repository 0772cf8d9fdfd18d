package dictionary

import "strings"

// Static answers membership queries against a fixed, lowercased word set.
// It backs both the built-in per-language common-word lists and any
// caller-supplied custom sets.
type Static struct {
	words map[string]struct{}
}

// NewStatic builds a static backend from the given words. The words are
// lowercased on the way in; an empty list fails construction.
func NewStatic(words []string) (*Static, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordSet
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Static{words: set}, nil
}

// IsRealWord reports whether the word is in the set, case-insensitively.
func (s *Static) IsRealWord(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words in the set.
func (s *Static) Len() int {
	return len(s.words)
}
