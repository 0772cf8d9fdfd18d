package dictionary

// Backend decides whether a generated candidate should be treated as a real
// word. Implementations are case-insensitive and, aside from the documented
// self-disabling behavior of Frequency, immutable after construction.
type Backend interface {
	IsRealWord(word string) bool
}
