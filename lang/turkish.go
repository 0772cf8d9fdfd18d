package lang

func turkishDefinition() Definition {
	return Definition{
		Name: "turkish",
		Code: "tr",
		Onsets: []string{
			"", "b", "c", "ç", "d", "f", "g", "ğ", "h", "j", "k", "l",
			"m", "n", "p", "r", "s", "ş", "t", "v", "y", "z",
			"br", "dr", "gr", "kr", "pr", "tr",
		},
		Nuclei: []string{
			"a", "e", "ı", "i", "o", "ö", "u", "ü",
			"ai", "au", "ei", "ia", "ie", "io", "oa", "oi", "ua", "ue",
		},
		Codas: []string{
			"", "k", "l", "m", "n", "r", "s", "ş", "t", "ç",
			"rk", "rt", "rs", "rm", "nt",
		},
		CommonWords: []string{
			"merhaba", "teşekkür", "lütfen", "ev", "köpek", "kedi",
			"kadın", "adam", "su", "ateş", "hava", "toprak", "dost",
			"arkadaş", "gece", "gündüz", "zaman", "çalışma", "dünya",
			"aile", "aşk", "hayat", "anne", "baba", "kardeş", "abla",
			"çok", "az", "evet", "hayır", "bir", "iki", "üç",
		},
	}
}
