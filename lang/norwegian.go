package lang

func norwegianDefinition() Definition {
	return Definition{
		Name: "norwegian",
		Code: "no",
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
			"hei", "takk", "vær så snill", "hus", "hund", "katt",
			"kvinne", "mann", "vann", "ild", "luft", "jord", "venn",
			"venninne", "natt", "dag", "tid", "arbeid", "verden",
			"familie", "kjærlighet", "liv", "mor", "far", "bror",
			"søster", "mye", "lite", "ja", "nei", "en", "to", "tre",
		},
	}
}
