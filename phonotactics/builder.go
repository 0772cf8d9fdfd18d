package phonotactics

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// maxPatternAttempts bounds the internal retry loop that avoids candidates
// with ugly character runs.
const maxPatternAttempts = 8

// BuildCandidate assembles one lowercase candidate word from the profile.
//
// A target syllable count is drawn uniformly from [minSyllables,
// maxSyllables] and syllables are appended until the target is reached or
// the candidate would exceed maxLength (measured in runes). Candidates
// containing ugly character runs are rebuilt up to a fixed number of times;
// if every attempt is ugly, the last non-empty candidate is returned rather
// than failing, and as a final fallback a single random nucleus.
//
// The returned string is never empty on success.
func BuildCandidate(rng *rand.Rand, minSyllables, maxSyllables, maxLength int, profile *Profile) (string, error) {
	if minSyllables < 1 {
		return "", fmt.Errorf("%w: min %d must be at least 1", ErrInvalidSyllableRange, minSyllables)
	}
	if minSyllables > maxSyllables {
		return "", fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidSyllableRange, minSyllables, maxSyllables)
	}
	if maxLength < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidMaxLength, maxLength)
	}
	if err := profile.Validate(); err != nil {
		return "", err
	}

	var last string
	for attempt := 0; attempt < maxPatternAttempts; attempt++ {
		target := minSyllables + rng.Intn(maxSyllables-minSyllables+1)

		var b strings.Builder
		length := 0
		for i := 0; i < target; i++ {
			syllable := pick(rng, profile.Onsets) + pick(rng, profile.Nuclei) + pick(rng, profile.Codas)
			n := utf8.RuneCountInString(syllable)
			if length+n > maxLength && length > 0 {
				break
			}
			b.WriteString(syllable)
			length += n
			if length >= maxLength {
				break
			}
		}

		candidate := strings.ToLower(b.String())
		if utf8.RuneCountInString(candidate) > maxLength {
			// Normally unreachable: the loop above stops before overflowing.
			candidate = string([]rune(candidate)[:maxLength])
		}
		if candidate == "" {
			continue
		}

		last = candidate
		if !hasUglyPatterns(candidate) {
			return candidate, nil
		}
	}

	if last != "" {
		return last, nil
	}
	return strings.ToLower(pick(rng, profile.Nuclei)), nil
}

// hasUglyPatterns reports whether a lowercase candidate contains character
// runs that syllable concatenation can accidentally produce but that read as
// unpronounceable: three identical consecutive runes, "qq", or "yyy".
func hasUglyPatterns(word string) bool {
	runes := []rune(word)
	if len(runes) < 3 {
		return false
	}
	for i := 0; i+2 < len(runes); i++ {
		if runes[i] == runes[i+1] && runes[i+1] == runes[i+2] {
			return true
		}
	}
	return strings.Contains(word, "qq") || strings.Contains(word, "yyy")
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}
