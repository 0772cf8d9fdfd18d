package phonotactics

// Profile defines the legal syllable segments for one language variant.
// A syllable is assembled as onset+nucleus+coda, each drawn uniformly at
// random from the corresponding list. The empty string is a valid onset or
// coda (meaning "no onset/coda") but never a valid nucleus.
//
// Profiles are constructed once per language and shared read-only; nothing
// in this package mutates them.
type Profile struct {
	Onsets []string
	Nuclei []string
	Codas  []string
}

// Validate checks the structural invariants of the profile.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrNilProfile
	}
	if len(p.Onsets) == 0 {
		return ErrEmptyOnsets
	}
	if len(p.Nuclei) == 0 {
		return ErrEmptyNuclei
	}
	if len(p.Codas) == 0 {
		return ErrEmptyCodas
	}
	for _, nucleus := range p.Nuclei {
		if nucleus == "" {
			return ErrEmptyNucleusEntry
		}
	}
	return nil
}
