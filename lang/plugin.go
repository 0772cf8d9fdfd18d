package lang

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"golang.org/x/text/language"

	"github.com/taggedzi/nonwordgen/dictionary"
	"github.com/taggedzi/nonwordgen/phonotactics"
)

// VeryStrict lowers the frequency threshold to this ceiling so that less
// common words still count as real.
const veryStrictZipfCeiling = 2.0

// Plugin binds a phonotactic profile and a dictionary-assembly policy under
// a unique lowercase name. Plugins are created once and never mutated; the
// generator calls them polymorphically.
type Plugin interface {
	// Name returns the unique lowercase registry key.
	Name() string

	// BuildCandidate produces one lowercase candidate word from the
	// plugin's phonotactic profile.
	BuildCandidate(rng *rand.Rand, minSyllables, maxSyllables, maxLength int) (string, error)

	// BuildDictionary assembles the dictionary-backend chain for the
	// given strictness level. Unavailable tiers are skipped with a
	// warning; the chain never fails outright.
	BuildDictionary(strictness Strictness, minZipf float64) dictionary.Backend
}

// Definition is the declarative form of a language plugin: pure data, no
// behavior. It doubles as the YAML schema for custom language files.
type Definition struct {
	Name         string   `yaml:"name"`
	Code         string   `yaml:"code"`
	Onsets       []string `yaml:"onsets"`
	Nuclei       []string `yaml:"nuclei"`
	Codas        []string `yaml:"codas"`
	CommonWords  []string `yaml:"common_words"`
	CuratedWords []string `yaml:"curated_words"`
}

// Option configures plugin construction.
type Option func(*plugin)

// WithLookup wires the word-frequency lookup used by the Medium and higher
// strictness tiers. Without one, those tiers degrade to the static sets.
func WithLookup(lookup dictionary.Lookup) Option {
	return func(p *plugin) {
		p.lookup = lookup
	}
}

// WithLogger sets the logger used for strictness degradation warnings.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(p *plugin) {
		if log != nil {
			p.log = log
		}
	}
}

type plugin struct {
	name    string
	tag     language.Tag
	profile *phonotactics.Profile
	common  *dictionary.Static
	curated *dictionary.Static
	lookup  dictionary.Lookup
	log     *slog.Logger
}

// New validates a definition and builds a plugin from it. The name is
// lowercased, the code must parse as a BCP-47 tag, the profile must satisfy
// its structural invariants, and the common-word list must be non-empty.
func New(def Definition, opts ...Option) (Plugin, error) {
	name := strings.ToLower(strings.TrimSpace(def.Name))
	if name == "" {
		return nil, ErrEmptyName
	}
	tag, err := language.Parse(def.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %q for %s", ErrInvalidCode, def.Code, name)
	}
	profile := &phonotactics.Profile{Onsets: def.Onsets, Nuclei: def.Nuclei, Codas: def.Codas}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("lang: %s profile: %w", name, err)
	}
	common, err := dictionary.NewStatic(def.CommonWords)
	if err != nil {
		return nil, fmt.Errorf("lang: %s common words: %w", name, err)
	}

	p := &plugin{
		name:    name,
		tag:     tag,
		profile: profile,
		common:  common,
		log:     slog.Default(),
	}
	if len(def.CuratedWords) > 0 {
		curated, err := dictionary.NewStatic(def.CuratedWords)
		if err != nil {
			return nil, fmt.Errorf("lang: %s curated words: %w", name, err)
		}
		p.curated = curated
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *plugin) Name() string {
	return p.name
}

func (p *plugin) BuildCandidate(rng *rand.Rand, minSyllables, maxSyllables, maxLength int) (string, error) {
	return phonotactics.BuildCandidate(rng, minSyllables, maxSyllables, maxLength, p.profile)
}

func (p *plugin) BuildDictionary(strictness Strictness, minZipf float64) dictionary.Backend {
	backends := []dictionary.Backend{p.common}

	if strictness >= Medium {
		threshold := minZipf
		if strictness == VeryStrict {
			threshold = math.Min(minZipf, veryStrictZipfCeiling)
		}
		freq := dictionary.NewFrequency(p.lookup, p.tag, threshold, dictionary.WithFrequencyLogger(p.log))
		if freq.Available() {
			backends = append(backends, freq)
		} else {
			p.log.Warn("frequency backend unavailable; strictness degraded",
				"language", p.name, "strictness", strictness.String())
		}
	}

	if strictness >= Strict {
		if p.curated != nil {
			backends = append(backends, p.curated)
		} else {
			p.log.Warn("curated word list unavailable; strictness degraded",
				"language", p.name, "strictness", strictness.String())
		}
	}

	if len(backends) == 1 {
		return backends[0]
	}
	combined, err := dictionary.NewComposite(backends...)
	if err != nil {
		// Unreachable: the common-word backend is always present.
		return backends[0]
	}
	return combined
}
