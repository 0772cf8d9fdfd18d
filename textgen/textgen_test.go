package textgen_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taggedzi/nonwordgen/generator"
	"github.com/taggedzi/nonwordgen/lang"
	"github.com/taggedzi/nonwordgen/textgen"
)

func newWords(t *testing.T, seed int64) *generator.Generator {
	t.Helper()
	plugin, err := lang.Default().Get("english")
	require.NoError(t, err)
	gen, err := generator.New(plugin, generator.WithSeed(seed))
	require.NoError(t, err)
	return gen
}

func TestNew(t *testing.T) {
	t.Run("nil generator", func(t *testing.T) {
		_, err := textgen.New(nil)
		assert.ErrorIs(t, err, textgen.ErrNilGenerator)
	})

	t.Run("empty punctuation set", func(t *testing.T) {
		_, err := textgen.New(newWords(t, 1), textgen.WithPunctuation())
		assert.ErrorIs(t, err, textgen.ErrNoPunctuation)
	})
}

func TestSentence(t *testing.T) {
	composer, err := textgen.New(newWords(t, 42))
	require.NoError(t, err)

	t.Run("invalid word range", func(t *testing.T) {
		_, err := composer.Sentence(0, 5)
		assert.ErrorIs(t, err, textgen.ErrInvalidWordRange)
		_, err = composer.Sentence(6, 5)
		assert.ErrorIs(t, err, textgen.ErrInvalidWordRange)
	})

	t.Run("shape", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			sentence, err := composer.Sentence(3, 3)
			require.NoError(t, err)

			punct := sentence[len(sentence)-1:]
			assert.Contains(t, []string{".", "!", "?"}, punct)

			words := strings.Fields(strings.TrimSuffix(sentence, punct))
			assert.Len(t, words, 3)

			first := []rune(words[0])[0]
			assert.True(t, unicode.IsUpper(first), "sentence %q must start uppercase", sentence)
			for _, w := range words[1:] {
				assert.Equal(t, strings.ToLower(w), w, "only the first word is capitalized")
			}
		}
	})

	t.Run("custom punctuation", func(t *testing.T) {
		c, err := textgen.New(newWords(t, 7), textgen.WithPunctuation("‽"))
		require.NoError(t, err)

		sentence, err := c.Sentence(2, 4)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(sentence, "‽"))
	})
}

func TestSentences(t *testing.T) {
	composer, err := textgen.New(newWords(t, 11))
	require.NoError(t, err)

	_, err = composer.Sentences(0, 2, 4)
	assert.ErrorIs(t, err, textgen.ErrInvalidCount)

	sentences, err := composer.Sentences(5, 2, 4)
	require.NoError(t, err)
	assert.Len(t, sentences, 5)
}

func TestParagraph(t *testing.T) {
	composer, err := textgen.New(newWords(t, 13))
	require.NoError(t, err)

	t.Run("invalid sentence range", func(t *testing.T) {
		_, err := composer.Paragraph(0, 3, 2, 4)
		assert.ErrorIs(t, err, textgen.ErrInvalidSentenceRange)
	})

	t.Run("sentence count within bounds", func(t *testing.T) {
		paragraph, err := composer.Paragraph(2, 2, 3, 3)
		require.NoError(t, err)

		// Two sentences of three words each, joined by one space.
		assert.Len(t, strings.Fields(paragraph), 6)
	})
}

func TestParagraphs(t *testing.T) {
	composer, err := textgen.New(newWords(t, 17))
	require.NoError(t, err)

	_, err = composer.Paragraphs(0, 2, 3, 2, 4)
	assert.ErrorIs(t, err, textgen.ErrInvalidCount)

	paragraphs, err := composer.Paragraphs(3, 2, 3, 2, 4)
	require.NoError(t, err)
	assert.Len(t, paragraphs, 3)
	for _, p := range paragraphs {
		assert.NotEmpty(t, p)
	}
}

func TestComposerDeterministic(t *testing.T) {
	compose := func() string {
		composer, err := textgen.New(newWords(t, 123))
		require.NoError(t, err)
		paragraph, err := composer.Paragraph(2, 4, 3, 6)
		require.NoError(t, err)
		return paragraph
	}
	assert.Equal(t, compose(), compose())
}
