package lang

func portugueseDefinition() Definition {
	return Definition{
		Name: "portuguese",
		Code: "pt",
		Onsets: []string{
			"", "b", "br", "c", "ch", "cl", "cr", "d", "dr", "f", "fl",
			"fr", "g", "gl", "gr", "h", "j", "l", "lh", "m", "n", "nh",
			"p", "pl", "pr", "qu", "r", "s", "t", "tr", "v", "z",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u",
			"ai", "ei", "ia", "ie", "io", "oa", "oi", "ua", "ue", "ui",
			"ao", "ou", "eu",
		},
		Codas: []string{
			"", "l", "m", "n", "r", "s", "z",
			"ns", "nt", "rd", "rs", "rt", "rm", "x", "es", "em",
		},
		CommonWords: []string{
			"ola", "adeus", "obrigado", "por", "favor", "casa",
			"cachorro", "gato", "mulher", "homem", "agua", "terra",
			"fogo", "ar", "amigo", "amiga", "noite", "dia", "trabalho",
			"mundo", "familia", "tempo", "amor", "vida", "mae", "pai",
			"irmao", "irma", "muito", "pouco", "sim", "nao", "um",
			"dois", "tres",
		},
	}
}
