package lang

func swedishDefinition() Definition {
	return Definition{
		Name: "swedish",
		Code: "sv",
		Onsets: []string{
			"", "b", "bl", "br", "c", "ch", "d", "dr", "f", "fl", "fr",
			"g", "gl", "gr", "h", "j", "k", "kl", "kr", "l", "m", "n",
			"p", "pl", "pr", "r", "s", "sk", "sl", "sm", "sn", "sp",
			"st", "str", "t", "tr", "v",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u", "y", "å", "ä", "ö",
			"ai", "ei", "ia", "ie", "io", "oa", "oi", "ua", "ue",
		},
		Codas: []string{
			"", "l", "n", "r", "s", "t", "m", "p", "k", "g", "d",
			"ng", "nd", "nt", "st", "rs", "rt", "rm",
		},
		CommonWords: []string{
			"hej", "tack", "snälla", "hus", "hund", "katt", "kvinna",
			"man", "vatten", "eld", "luft", "jord", "vän", "väninna",
			"natt", "dag", "tid", "arbete", "värld", "familj",
			"kärlek", "liv", "mamma", "pappa", "bror", "syster",
			"mycket", "lite", "ja", "nej", "ett", "två", "tre",
		},
	}
}
