package textgen

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taggedzi/nonwordgen/generator"
)

var defaultPunctuation = []string{".", "!", "?"}

// Composer assembles pseudo-sentences and paragraphs from generated words.
// It shares the word generator's random source by default so a single seed
// reproduces whole texts; like the generator, it is not safe for concurrent
// use.
type Composer struct {
	words       *generator.Generator
	rng         *rand.Rand
	punctuation []string
	title       cases.Caser
}

// Option configures a Composer.
type Option func(*Composer)

// WithRNG overrides the random source used for word counts and punctuation
// draws. By default the Composer shares the word generator's source.
func WithRNG(rng *rand.Rand) Option {
	return func(c *Composer) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithPunctuation replaces the terminal punctuation marks (default ". ! ?").
func WithPunctuation(marks ...string) Option {
	return func(c *Composer) {
		c.punctuation = append([]string(nil), marks...)
	}
}

// New builds a Composer over the given word generator.
func New(words *generator.Generator, opts ...Option) (*Composer, error) {
	if words == nil {
		return nil, ErrNilGenerator
	}
	c := &Composer{
		words:       words,
		rng:         words.RNG(),
		punctuation: defaultPunctuation,
		title:       cases.Title(language.Und, cases.NoLower),
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.punctuation) == 0 {
		return nil, ErrNoPunctuation
	}
	return c, nil
}

// Sentence generates one pseudo-sentence: a uniformly drawn number of words
// in [minWords, maxWords], first word capitalized, joined by spaces, closed
// with a random terminal punctuation mark.
func (c *Composer) Sentence(minWords, maxWords int) (string, error) {
	if minWords < 1 || maxWords < minWords {
		return "", fmt.Errorf("%w: min %d, max %d", ErrInvalidWordRange, minWords, maxWords)
	}

	n := minWords + c.rng.Intn(maxWords-minWords+1)
	words, err := c.words.GenerateMany(n, false)
	if err != nil {
		return "", err
	}

	words[0] = c.title.String(words[0])
	punct := c.punctuation[c.rng.Intn(len(c.punctuation))]
	return strings.Join(words, " ") + punct, nil
}

// Sentences generates count pseudo-sentences.
func (c *Composer) Sentences(count, minWords, maxWords int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	sentences := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s, err := c.Sentence(minWords, maxWords)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, s)
	}
	return sentences, nil
}

// Paragraph generates one paragraph of a uniformly drawn number of
// sentences in [minSentences, maxSentences], joined by single spaces.
func (c *Composer) Paragraph(minSentences, maxSentences, minWords, maxWords int) (string, error) {
	if minSentences < 1 || maxSentences < minSentences {
		return "", fmt.Errorf("%w: min %d, max %d", ErrInvalidSentenceRange, minSentences, maxSentences)
	}

	n := minSentences + c.rng.Intn(maxSentences-minSentences+1)
	sentences, err := c.Sentences(n, minWords, maxWords)
	if err != nil {
		return "", err
	}
	return strings.Join(sentences, " "), nil
}

// Paragraphs generates count paragraphs.
func (c *Composer) Paragraphs(count, minSentences, maxSentences, minWords, maxWords int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	paragraphs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		p, err := c.Paragraph(minSentences, maxSentences, minWords, maxWords)
		if err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs, nil
}
