package lang

func germanDefinition() Definition {
	return Definition{
		Name: "german",
		Code: "de",
		Onsets: []string{
			"", "b", "bl", "br", "c", "ch", "d", "dr", "f", "fl", "fr",
			"g", "gl", "gr", "h", "k", "kl", "kr", "l", "m", "n",
			"p", "pf", "pl", "pr", "qu", "r", "s", "sch", "sp", "st",
			"str", "t", "tr", "w", "z",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u", "ä", "ö", "ü",
			"ai", "ei", "au", "eu", "äu",
		},
		Codas: []string{
			"", "b", "d", "g", "h", "k", "l", "m", "n", "r", "s", "t",
			"x", "ch", "ld", "lt", "ng", "nk", "nt", "rst", "rt", "ß",
		},
		CommonWords: []string{
			"hallo", "danke", "bitte", "haus", "hund", "katze", "frau",
			"mann", "wasser", "feuer", "luft", "erde", "freund",
			"freundin", "tag", "nacht", "zeit", "arbeit", "welt",
			"familie", "liebe", "leben", "mutter", "vater", "bruder",
			"schwester", "viel", "wenig", "ja", "nein", "eins", "zwei",
			"drei", "mädchen", "groß", "früh",
		},
	}
}
