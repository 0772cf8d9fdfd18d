// Package textgen composes pseudo-sentences and paragraphs from generated
// non-words.
//
// There is no grammar here: a sentence is a run of words from the
// generator, capitalized at the front and punctuated at the back, and a
// paragraph is a run of sentences joined by spaces. The Composer draws its
// word and sentence counts from the same random source as the word
// generator (unless overridden with WithRNG), so one seed reproduces an
// entire text.
package textgen
