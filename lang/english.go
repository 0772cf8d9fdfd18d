package lang

import (
	_ "embed"
	"strings"
)

//go:embed data/en_curated.txt
var englishCuratedData string

func englishDefinition() Definition {
	return Definition{
		Name: "english",
		Code: "en",
		Onsets: []string{
			"", "b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n",
			"p", "q", "r", "s", "t", "v", "w", "y", "z",
			"bl", "br", "cl", "cr", "dr", "fl", "fr", "gl", "gr",
			"pl", "pr", "sl", "sm", "sn", "sp", "st", "str", "sw", "tr",
			"ch", "sh", "th", "wh",
		},
		Nuclei: []string{
			"a", "e", "i", "o", "u",
			"aa", "ae", "ai", "au", "ea", "ee", "ei", "ia", "ie", "io",
			"oa", "oe", "oi", "oo", "ou", "ua", "ue", "ui",
		},
		Codas: []string{
			"", "b", "d", "f", "g", "h", "k", "l", "m", "n", "p", "r",
			"s", "t", "v", "x", "y", "z",
			"ck", "ft", "ld", "lk", "lm", "lp", "lt", "mp", "nd", "ng",
			"nk", "nt", "pt", "rd", "rk", "rn", "rst", "rt", "sh", "sk",
			"sp", "st", "th", "ts", "ch",
		},
		CommonWords: []string{
			"the", "and", "that", "this", "what", "with", "from", "have",
			"your", "would", "could", "should", "which", "where", "there",
			"their", "these", "those", "about", "after", "again", "always",
			"because", "before", "first", "never", "other", "people",
			"small", "thing", "think", "time", "under", "water", "world",
			"house",
		},
		CuratedWords: splitWordList(englishCuratedData),
	}
}

// splitWordList parses an embedded one-word-per-line list, skipping blanks
// and comments.
func splitWordList(data string) []string {
	var words []string
	for _, line := range strings.Split(data, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words
}
