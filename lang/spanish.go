package lang

func spanishDefinition() Definition {
	return Definition{
		Name: "spanish",
		Code: "es",
		Onsets: []string{
			"", "b", "c", "ch", "cl", "cr", "d", "dr", "f", "fl", "fr",
			"g", "gr", "gu", "h", "j", "l", "ll", "m", "n", "ñ",
			"p", "pl", "pr", "qu", "r", "rr", "s", "t", "tr", "v", "y", "z",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u", "á", "é", "í", "ó", "ú", "ü",
			"ai", "au", "ei", "ia", "ie", "io", "oa", "oi", "ua", "ue", "ui",
		},
		Codas: []string{
			"", "l", "n", "ñ", "r", "s", "z", "m", "d", "t", "x", "ch",
			"ns", "nt", "rd", "rl", "rs", "rt",
		},
		CommonWords: []string{
			"hola", "adiós", "gracias", "por favor", "casa", "perro",
			"gato", "mujer", "hombre", "agua", "tierra", "fuego", "aire",
			"amigo", "amiga", "noche", "día", "trabajo", "mundo",
			"familia", "tiempo", "amor", "vida", "madre", "padre",
			"hermano", "hermana", "mucho", "poco", "sí", "no",
			"uno", "dos", "tres",
		},
	}
}
