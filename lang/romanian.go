package lang

func romanianDefinition() Definition {
	return Definition{
		Name: "romanian",
		Code: "ro",
		Onsets: []string{
			"", "b", "br", "c", "ch", "cl", "cr", "d", "dr", "f", "fl",
			"fr", "g", "gl", "gr", "h", "j", "l", "m", "n", "p", "pl",
			"pr", "r", "s", "sc", "sl", "sm", "sn", "sp", "st", "str",
			"t", "tr", "v", "z",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u", "ă", "â", "î",
			"ai", "ei", "ia", "ie", "io", "oa", "oi", "ua", "ui",
		},
		Codas: []string{
			"", "l", "n", "r", "s", "t", "m", "p", "c", "ș", "ț",
			"nd", "nt", "st", "rs", "rt", "rm",
		},
		CommonWords: []string{
			"salut", "mulțumesc", "te rog", "casă", "câine", "pisică",
			"femeie", "bărbat", "apă", "foc", "aer", "pământ",
			"prieten", "prietena", "noapte", "zi", "timp", "muncă",
			"lume", "familie", "dragoste", "viață", "mamă", "tată",
			"frate", "soră", "mult", "puțin", "da", "nu",
			"unu", "doi", "trei",
		},
	}
}
