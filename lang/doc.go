// Package lang binds phonotactic profiles and dictionary-assembly policies
// into named language plugins and provides the registry that looks them up.
//
// A Plugin exposes two capabilities: building one candidate word from its
// profile, and assembling the dictionary-backend chain for a Strictness
// level. Twelve languages ship built in; custom languages can be declared
// in YAML and loaded with LoadPluginFile.
//
// # Strictness policy
//
// Every plugin assembles the same chain shape:
//
//   - loose: the language's common-word set only.
//   - medium: adds the frequency-corpus backend at the caller's Zipf
//     threshold, when the corpus supports the language.
//   - strict: adds the curated word list, where one exists.
//   - very_strict: like strict, with the frequency threshold lowered to at
//     most 2.0 so rarer words still count as real.
//
// A tier whose backend is unavailable is skipped with a logged warning;
// strictness degrades gracefully instead of failing the chain.
//
// # Registry
//
// The registry is an explicit value, not ambient global state: build one
// with Default() (all built-ins, wired to the embedded frequency corpus) or
// NewRegistry(plugins...) for tests and embedders, and pass it to whatever
// needs language lookup. Get("") resolves to "english". Registration is a
// setup-time activity; a registry that is no longer being written to is
// safe for concurrent reads.
//
// # Usage
//
//	registry := lang.Default()
//	plugin, err := registry.Get("romanian")
//	if err != nil {
//		// message lists every registered name
//	}
//	dict := plugin.BuildDictionary(lang.Strict, 2.7)
package lang
