package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taggedzi/nonwordgen/dictionary"
	"github.com/taggedzi/nonwordgen/lang"
)

// Defaults applied by New when the corresponding option is absent.
const (
	DefaultMinLength    = 4
	DefaultMaxLength    = 10
	DefaultMinSyllables = 1
	DefaultMaxSyllables = 3
	DefaultMinZipf      = 2.7

	// DefaultMaxAttempts is the per-word attempt budget used by Generate
	// and by each iteration of GenerateMany, and also the duplicate
	// budget for unique batches.
	DefaultMaxAttempts = 1000
)

// Generator produces non-words by rejection sampling: candidates come from
// the language plugin's syllable builder and are discarded until one passes
// the length bounds, the ban set, and (unless real words are allowed) the
// dictionary backend.
//
// A Generator owns its random source and is not safe for concurrent use;
// construct one per goroutine, each with its own seed.
type Generator struct {
	plugin       lang.Plugin
	minLength    int
	maxLength    int
	minSyllables int
	maxSyllables int
	strictness   lang.Strictness
	minZipf      float64
	allowReal    bool
	banned       map[string]struct{}
	dict         dictionary.Backend
	rng          *rand.Rand
}

// Option configures generator construction.
type Option func(*Generator)

// WithLengthRange bounds the length of accepted words, in runes.
func WithLengthRange(min, max int) Option {
	return func(g *Generator) {
		g.minLength = min
		g.maxLength = max
	}
}

// WithSyllableRange bounds the syllable count of built candidates.
func WithSyllableRange(min, max int) Option {
	return func(g *Generator) {
		g.minSyllables = min
		g.maxSyllables = max
	}
}

// WithStrictness selects the dictionary chain the plugin assembles when no
// explicit dictionary is supplied.
func WithStrictness(s lang.Strictness) Option {
	return func(g *Generator) {
		g.strictness = s
	}
}

// WithMinZipf sets the frequency threshold handed to the plugin's
// dictionary assembly. Lower is more permissive.
func WithMinZipf(minZipf float64) Option {
	return func(g *Generator) {
		g.minZipf = minZipf
	}
}

// AllowRealWords disables dictionary filtering entirely.
func AllowRealWords() Option {
	return func(g *Generator) {
		g.allowReal = true
	}
}

// WithBannedWords rejects the given words (case-insensitive) even when they
// would otherwise be accepted.
func WithBannedWords(words ...string) Option {
	return func(g *Generator) {
		for _, w := range words {
			g.banned[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithDictionary overrides the dictionary backend, bypassing the plugin's
// strictness-based assembly.
func WithDictionary(backend dictionary.Backend) Option {
	return func(g *Generator) {
		g.dict = backend
	}
}

// WithRNG sets the random source. The source is advanced sequentially;
// sharing it across generators breaks reproducibility.
func WithRNG(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithSeed is shorthand for WithRNG(rand.New(rand.NewSource(seed))), giving
// deterministic output for a fixed configuration.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// New builds a generator for the given language plugin. Bounds are
// validated fail-fast; an unseeded generator draws its seed from the clock.
func New(plugin lang.Plugin, opts ...Option) (*Generator, error) {
	if plugin == nil {
		return nil, ErrNilPlugin
	}

	g := &Generator{
		plugin:       plugin,
		minLength:    DefaultMinLength,
		maxLength:    DefaultMaxLength,
		minSyllables: DefaultMinSyllables,
		maxSyllables: DefaultMaxSyllables,
		strictness:   lang.Medium,
		minZipf:      DefaultMinZipf,
		banned:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.minLength < 1 {
		return nil, fmt.Errorf("%w: min %d must be at least 1", ErrInvalidLengthRange, g.minLength)
	}
	if g.maxLength < g.minLength {
		return nil, fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidLengthRange, g.minLength, g.maxLength)
	}
	if g.minSyllables < 1 {
		return nil, fmt.Errorf("%w: min %d must be at least 1", ErrInvalidSyllableRange, g.minSyllables)
	}
	if g.maxSyllables < g.minSyllables {
		return nil, fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidSyllableRange, g.minSyllables, g.maxSyllables)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.dict == nil {
		g.dict = plugin.BuildDictionary(g.strictness, g.minZipf)
	}
	return g, nil
}

// GenerateOne returns the first candidate that passes every filter, trying
// at most maxAttempts times. An exhausted budget fails with
// ErrAttemptsExhausted naming the budget.
func (g *Generator) GenerateOne(maxAttempts int) (string, error) {
	if maxAttempts < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidAttempts, maxAttempts)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := g.plugin.BuildCandidate(g.rng, g.minSyllables, g.maxSyllables, g.maxLength)
		if err != nil {
			return "", err
		}

		if n := utf8.RuneCountInString(candidate); n < g.minLength || n > g.maxLength {
			continue
		}
		if _, banned := g.banned[candidate]; banned {
			continue
		}
		if !g.allowReal && g.dict.IsRealWord(candidate) {
			continue
		}
		return candidate, nil
	}

	return "", fmt.Errorf("%w: no candidate satisfied the constraints after %d attempts", ErrAttemptsExhausted, maxAttempts)
}

// Generate is GenerateOne with the default attempt budget.
func (g *Generator) Generate() (string, error) {
	return g.GenerateOne(DefaultMaxAttempts)
}

// GenerateMany collects count accepted words, in generation order. With
// unique set, duplicates within the batch are discarded and regenerated; a
// run of DefaultMaxAttempts consecutive duplicates fails with
// ErrUniqueExhausted, since it means the achievable unique-word space is
// smaller than the request.
func (g *Generator) GenerateMany(count int, unique bool) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	results := make([]string, 0, count)
	var seen map[string]struct{}
	if unique {
		seen = make(map[string]struct{}, count)
	}

	duplicates := 0
	for len(results) < count {
		word, err := g.Generate()
		if err != nil {
			return nil, err
		}
		if unique {
			if _, dup := seen[word]; dup {
				duplicates++
				if duplicates >= DefaultMaxAttempts {
					return nil, fmt.Errorf("%w: %d consecutive duplicates while collecting %d unique words", ErrUniqueExhausted, duplicates, count)
				}
				continue
			}
			seen[word] = struct{}{}
			duplicates = 0
		}
		results = append(results, word)
	}
	return results, nil
}

// RNG exposes the generator's random source so composition layers (like
// textgen) can share it explicitly instead of reaching into private state.
func (g *Generator) RNG() *rand.Rand {
	return g.rng
}
