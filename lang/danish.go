package lang

func danishDefinition() Definition {
	return Definition{
		Name: "danish",
		Code: "da",
		Onsets: []string{
			"", "b", "bl", "br", "c", "ch", "d", "dr", "f", "fl", "fr",
			"g", "gl", "gr", "h", "j", "k", "kl", "kr", "l", "m", "n",
			"p", "pl", "pr", "r", "s", "sk", "sl", "sm", "sn", "sp",
			"st", "str", "t", "tr", "v",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u", "y", "æ", "ø", "å",
			"ai", "ei", "ia", "ie", "io", "oa", "oi", "ua", "ue",
		},
		Codas: []string{
			"", "l", "n", "r", "s", "t", "m", "p", "k", "g", "d",
			"ng", "nd", "nt", "st", "rs", "rt", "rm",
		},
		CommonWords: []string{
			"hej", "tak", "venligst", "hus", "hund", "kat", "kvinde",
			"mand", "vand", "ild", "luft", "jord", "ven", "veninde",
			"nat", "dag", "tid", "arbejde", "verden", "familie",
			"kærlighed", "liv", "mor", "far", "bror", "søster",
			"meget", "lidt", "ja", "nej", "en", "to", "tre",
		},
	}
}
