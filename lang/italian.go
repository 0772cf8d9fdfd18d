package lang

func italianDefinition() Definition {
	return Definition{
		Name: "italian",
		Code: "it",
		Onsets: []string{
			"", "b", "c", "ch", "ci", "cl", "cr", "d", "f", "fl", "fr",
			"g", "gh", "gl", "gr", "l", "m", "n", "p", "pl", "pr", "qu",
			"r", "s", "sc", "sp", "st", "str", "t", "tr", "v", "z",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u", "à", "è", "é", "ì", "ò", "ù",
			"ai", "ei", "ia", "io", "oa", "oi", "ua", "ue",
		},
		Codas: []string{
			"", "l", "n", "r", "s", "t",
			"re", "le", "ri", "li", "lo", "no", "la", "ra",
		},
		CommonWords: []string{
			"ciao", "grazie", "per favore", "casa", "cane", "gatto",
			"donna", "uomo", "acqua", "fuoco", "aria", "terra", "amico",
			"amica", "notte", "giorno", "tempo", "lavoro", "mondo",
			"famiglia", "amore", "vita", "madre", "padre", "fratello",
			"sorella", "molto", "poco", "sì", "no", "uno", "due", "tre",
		},
	}
}
