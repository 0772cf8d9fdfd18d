// Package wordfreq ships a small embedded word-frequency corpus used to
// judge whether a generated candidate is a common real word.
//
// Scores follow the Zipf convention: log10 of occurrences per billion
// words, so "the" scores around 7.7 and words below ~3 are rare. The
// embedded tables cover the most frequent words for each supported
// language, which is all the generator needs: its candidates are filtered
// against a minimum-Zipf threshold, so only common words matter.
//
// Tables live under data/<iso639-1>.txt as "word score" lines and are
// compiled into the binary with go:embed. Corpus lookups are pure map
// reads: no file or network access happens after New.
package wordfreq
