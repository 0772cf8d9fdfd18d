// Package dictionary provides the real-word filters used to reject
// generated candidates that already exist in a language.
//
// Every backend implements the Backend interface: a single case-insensitive
// IsRealWord query over immutable state. Three variants are provided:
//
//   - Static: membership in a fixed word set (built-in common words or a
//     caller-supplied list).
//   - Frequency: a threshold test against a Zipf word-frequency corpus,
//     reached through the Lookup interface. Degrades to "never flags
//     anything" when the corpus is missing or the language unsupported, and
//     permanently disables itself on unexpected runtime failures. The
//     degradation is logged via slog, never propagated as an error.
//   - Composite: logical OR over an ordered, non-empty list of backends.
//
// # Usage
//
//	common, _ := dictionary.NewStatic([]string{"the", "and", "water"})
//	freq := dictionary.NewFrequency(corpus, language.English, 2.7)
//	combined, _ := dictionary.NewComposite(common, freq)
//	combined.IsRealWord("water") // true
//
// # Error Handling
//
// Construction errors are sentinels comparable with errors.Is:
// ErrEmptyWordSet and ErrNoBackends. Frequency construction never fails;
// unavailability is a state (Available), not an error.
package dictionary
