package lang

func frenchDefinition() Definition {
	return Definition{
		Name: "french",
		Code: "fr",
		Onsets: []string{
			"", "b", "br", "bl", "c", "ch", "cl", "cr", "d", "dr",
			"f", "fl", "fr", "g", "gl", "gr", "h", "j", "l", "m", "n",
			"p", "pl", "pr", "qu", "r", "s", "t", "tr", "v", "vr",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u", "y",
			"ai", "au", "ei", "eu", "ia", "ie", "io", "oi", "ou", "ue",
		},
		Codas: []string{
			"", "l", "n", "r", "s", "t", "x", "z",
			"nd", "nt", "rd", "rt", "rs", "re", "que", "che",
		},
		CommonWords: []string{
			"bonjour", "merci", "pardon", "maison", "fromage", "vin",
			"pain", "eau", "ami", "amie", "femme", "homme", "jour",
			"nuit", "temps", "travail", "monde", "famille", "amour",
			"vie", "mere", "pere", "frere", "soeur", "beaucoup", "peu",
			"oui", "non", "un", "deux", "trois",
		},
	}
}
