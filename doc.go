// Package nonwordgen is the root of a toolkit that generates pronounceable,
// non-existent words, plus sentences and paragraphs made of them, for a
// target natural language.
//
// The work is split across focused packages:
//
//   - phonotactics assembles lowercase candidates by sampling syllables
//     (onset+nucleus+coda) from a per-language profile, rejecting ugly
//     character runs internally.
//   - dictionary decides whether a candidate is a real word: static sets,
//     a Zipf-frequency threshold, and an OR-composite over both.
//   - wordfreq embeds the frequency corpus behind the dictionary's lookup.
//   - lang binds profiles and dictionary policies into named plugins and
//     provides the registry (twelve built-in languages plus YAML-defined
//     custom ones).
//   - generator runs the rejection-sampling loop with length bounds, ban
//     lists, attempt budgets, and unique batch collection.
//   - textgen joins generated words into capitalized, punctuated
//     pseudo-sentences and paragraphs.
//
// The cmd/nonwordgen CLI wires it all together. Typical library use:
//
//	plugin, err := lang.Default().Get("english")
//	gen, err := generator.New(plugin, generator.WithSeed(123))
//	word, err := gen.Generate()
//
// Generated text is for placeholders, naming, and linguistic play; nothing
// here attempts grammatical or morphological correctness.
package nonwordgen
