package lang

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/taggedzi/nonwordgen/dictionary"
	"github.com/taggedzi/nonwordgen/wordfreq"
)

// DefaultLanguage is the registry key used when a lookup passes an empty
// name.
const DefaultLanguage = "english"

// Registry maps lowercase language names to plugins. It is an explicit
// value built once and passed to whatever needs language lookup; there is
// no ambient global registry. Registration happens during setup; once
// populated, concurrent reads are safe as long as no further Register calls
// are made.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry builds a registry holding the given plugins.
func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{plugins: make(map[string]Plugin, len(plugins))}
	for _, p := range plugins {
		r.Register(p)
	}
	return r
}

// Register inserts the plugin keyed by its lowercased name. The last
// registration for a given name wins; nil plugins are ignored.
func (r *Registry) Register(p Plugin) {
	if p == nil {
		return
	}
	r.plugins[strings.ToLower(p.Name())] = p
}

// Get returns the plugin registered under name, defaulting to
// DefaultLanguage when name is empty. Unknown names fail with
// ErrUnknownLanguage; the message enumerates all registered names.
func (r *Registry) Get(name string) (Plugin, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultLanguage
	}
	p, ok := r.plugins[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLanguage, name, strings.Join(r.Names(), ", "))
	}
	return p, nil
}

// Names returns all registered language names, lexicographically sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default builds a registry of every built-in language, wired to the
// embedded frequency corpus. If the corpus fails to load, the registry is
// still usable: frequency tiers degrade and a warning is logged.
func Default() *Registry {
	var lookup dictionary.Lookup
	if corpus, err := wordfreq.New(); err != nil {
		slog.Default().Warn("frequency corpus failed to load; frequency filtering disabled", "error", err)
	} else {
		lookup = corpus
	}
	return NewRegistry(builtins(lookup)...)
}

// builtins constructs one plugin per built-in definition. The definitions
// are fixed at compile time, so a construction failure is a programming
// error.
func builtins(lookup dictionary.Lookup) []Plugin {
	defs := []Definition{
		englishDefinition(),
		spanishDefinition(),
		frenchDefinition(),
		germanDefinition(),
		italianDefinition(),
		portugueseDefinition(),
		dutchDefinition(),
		swedishDefinition(),
		norwegianDefinition(),
		danishDefinition(),
		romanianDefinition(),
		turkishDefinition(),
	}
	plugins := make([]Plugin, 0, len(defs))
	for _, def := range defs {
		p, err := New(def, WithLookup(lookup))
		if err != nil {
			panic(fmt.Sprintf("lang: invalid built-in definition %q: %v", def.Name, err))
		}
		plugins = append(plugins, p)
	}
	return plugins
}
