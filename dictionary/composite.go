package dictionary

// Composite combines an ordered list of backends with logical OR: a word is
// real if any constituent says so. Evaluation short-circuits on the first
// positive answer.
type Composite struct {
	backends []Backend
}

// NewComposite builds a composite over the given backends, preserving their
// order. Zero backends fails construction.
func NewComposite(backends ...Backend) (*Composite, error) {
	if len(backends) == 0 {
		return nil, ErrNoBackends
	}
	return &Composite{backends: append([]Backend(nil), backends...)}, nil
}

// IsRealWord reports whether any constituent backend flags the word.
func (c *Composite) IsRealWord(word string) bool {
	for _, b := range c.backends {
		if b.IsRealWord(word) {
			return true
		}
	}
	return false
}
