package lang

import (
	"fmt"
	"strings"
)

// Strictness selects how many dictionary backends a plugin chains together
// when rejecting real-word candidates. It is a policy level, not a numeric
// scale: each level maps to a fixed chain shape (see Plugin.BuildDictionary).
type Strictness int

const (
	// Loose filters only against the language's common-word set.
	Loose Strictness = iota
	// Medium adds the frequency-corpus backend at the caller's threshold.
	Medium
	// Strict additionally chains the curated word list where one exists.
	Strict
	// VeryStrict behaves like Strict with the frequency threshold lowered
	// to at most 2.0, so more candidates get flagged as real.
	VeryStrict
)

// String returns the canonical lowercase name of the level.
func (s Strictness) String() string {
	switch s {
	case Loose:
		return "loose"
	case Medium:
		return "medium"
	case Strict:
		return "strict"
	case VeryStrict:
		return "very_strict"
	default:
		return fmt.Sprintf("strictness(%d)", int(s))
	}
}

// StrictnessNames returns the valid strictness names in ascending order.
func StrictnessNames() []string {
	return []string{Loose.String(), Medium.String(), Strict.String(), VeryStrict.String()}
}

// ParseStrictness converts a name into a Strictness level. Matching is
// case-insensitive and accepts "-" in place of "_".
func ParseStrictness(name string) (Strictness, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "loose":
		return Loose, nil
	case "medium":
		return Medium, nil
	case "strict":
		return Strict, nil
	case "very_strict":
		return VeryStrict, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownStrictness, name, strings.Join(StrictnessNames(), ", "))
	}
}
