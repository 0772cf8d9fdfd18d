// Package generator turns phonotactic candidates into accepted non-words
// via rejection sampling.
//
// The generator asks its language plugin for candidates and filters them
// through three semantic gates: length bounds, a ban set, and the
// dictionary backend (skipped when real words are allowed). Aesthetic
// rejection of ugly character runs already happened inside the candidate
// builder, so this loop stays focused on "does this word exist" questions
// and callers can swap dictionaries without touching syllable assembly.
//
// # Usage
//
//	plugin, _ := lang.Default().Get("english")
//	gen, err := generator.New(plugin,
//		generator.WithLengthRange(4, 10),
//		generator.WithSyllableRange(1, 3),
//		generator.WithStrictness(lang.Strict),
//		generator.WithSeed(123),
//	)
//	word, err := gen.Generate()
//	batch, err := gen.GenerateMany(50, true)
//
// With a fixed seed and fixed configuration the output sequence is
// deterministic.
//
// # Error Handling
//
// Configuration problems fail construction or the call immediately
// (ErrInvalidLengthRange, ErrInvalidSyllableRange, ErrInvalidAttempts,
// ErrInvalidCount, ErrNilPlugin). ErrAttemptsExhausted is an expected
// runtime outcome when constraints are too tight; catch it and relax the
// configuration. ErrUniqueExhausted signals that a unique batch asked for
// more words than the configuration can produce.
package generator
