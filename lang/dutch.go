package lang

func dutchDefinition() Definition {
	return Definition{
		Name: "dutch",
		Code: "nl",
		Onsets: []string{
			"", "b", "bl", "br", "c", "ch", "cl", "cr", "d", "dr",
			"f", "fl", "fr", "g", "gl", "gr", "h", "j", "k", "kl", "kr",
			"l", "m", "n", "p", "pl", "pr", "r", "s", "sch", "sl", "sm",
			"sn", "sp", "st", "str", "t", "tr", "v", "vl", "vr", "w", "z",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u",
			"aa", "ee", "oo", "eu", "ie", "ij", "oe", "ui", "ou", "au",
		},
		Codas: []string{
			"", "l", "n", "r", "s", "t", "f", "g", "k", "m", "p",
			"ch", "cht", "nd", "ng", "nk", "nt", "rd", "rt", "st", "rs", "rm",
		},
		CommonWords: []string{
			"hallo", "dank", "dankjewel", "alsjeblieft", "huis", "hond",
			"kat", "vrouw", "man", "water", "vuur", "lucht", "aarde",
			"vriend", "vriendin", "nacht", "dag", "tijd", "werk",
			"wereld", "familie", "liefde", "leven", "moeder", "vader",
			"broer", "zus", "veel", "weinig", "ja", "nee", "een",
			"twee", "drie",
		},
	}
}
