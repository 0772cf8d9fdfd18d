package generator_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taggedzi/nonwordgen/generator"
	"github.com/taggedzi/nonwordgen/lang"
)

func englishPlugin(t *testing.T) lang.Plugin {
	t.Helper()
	p, err := lang.Default().Get("english")
	require.NoError(t, err)
	return p
}

// tinyPlugin can only ever produce the single word "a".
func tinyPlugin(t *testing.T) lang.Plugin {
	t.Helper()
	p, err := lang.New(lang.Definition{
		Name:        "tiny",
		Code:        "en",
		Onsets:      []string{""},
		Nuclei:      []string{"a"},
		Codas:       []string{""},
		CommonWords: []string{"placeholder"},
	})
	require.NoError(t, err)
	return p
}

// alwaysReal flags every candidate as a real word.
type alwaysReal struct{}

func (alwaysReal) IsRealWord(string) bool { return true }

func TestNewValidation(t *testing.T) {
	plugin := englishPlugin(t)

	tests := []struct {
		name    string
		opts    []generator.Option
		wantErr error
	}{
		{"nil plugin", nil, generator.ErrNilPlugin},
		{"zero min length", []generator.Option{generator.WithLengthRange(0, 10)}, generator.ErrInvalidLengthRange},
		{"inverted length range", []generator.Option{generator.WithLengthRange(8, 4)}, generator.ErrInvalidLengthRange},
		{"zero min syllables", []generator.Option{generator.WithSyllableRange(0, 3)}, generator.ErrInvalidSyllableRange},
		{"inverted syllable range", []generator.Option{generator.WithSyllableRange(3, 1)}, generator.ErrInvalidSyllableRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plugin
			if tt.name == "nil plugin" {
				p = nil
			}
			_, err := generator.New(p, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Run("respects length bounds", func(t *testing.T) {
		gen, err := generator.New(englishPlugin(t),
			generator.WithLengthRange(5, 7),
			generator.WithSeed(42))
		require.NoError(t, err)

		for i := 0; i < 200; i++ {
			word, err := gen.Generate()
			require.NoError(t, err)
			n := utf8.RuneCountInString(word)
			assert.GreaterOrEqual(t, n, 5)
			assert.LessOrEqual(t, n, 7)
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		run := func() []string {
			gen, err := generator.New(englishPlugin(t), generator.WithSeed(123))
			require.NoError(t, err)
			words, err := gen.GenerateMany(25, false)
			require.NoError(t, err)
			return words
		}
		assert.Equal(t, run(), run())
	})

	t.Run("never emits banned words", func(t *testing.T) {
		gen, err := generator.New(tinyPlugin(t),
			generator.WithLengthRange(1, 1),
			generator.WithBannedWords("A"),
			generator.WithSeed(1))
		require.NoError(t, err)

		// The only producible word is "a" and it is banned.
		_, err = gen.GenerateOne(50)
		assert.ErrorIs(t, err, generator.ErrAttemptsExhausted)
	})

	t.Run("rejects real words by default", func(t *testing.T) {
		gen, err := generator.New(englishPlugin(t),
			generator.WithDictionary(alwaysReal{}),
			generator.WithSeed(7))
		require.NoError(t, err)

		_, err = gen.GenerateOne(50)
		assert.ErrorIs(t, err, generator.ErrAttemptsExhausted)
		assert.Contains(t, err.Error(), "50")
	})

	t.Run("allow real words bypasses the dictionary", func(t *testing.T) {
		gen, err := generator.New(englishPlugin(t),
			generator.WithDictionary(alwaysReal{}),
			generator.AllowRealWords(),
			generator.WithSeed(7))
		require.NoError(t, err)

		word, err := gen.Generate()
		require.NoError(t, err)
		assert.NotEmpty(t, word)
	})

	t.Run("invalid attempt budget", func(t *testing.T) {
		gen, err := generator.New(englishPlugin(t), generator.WithSeed(1))
		require.NoError(t, err)

		_, err = gen.GenerateOne(0)
		assert.ErrorIs(t, err, generator.ErrInvalidAttempts)
	})
}

func TestGenerateMany(t *testing.T) {
	t.Run("invalid count", func(t *testing.T) {
		gen, err := generator.New(englishPlugin(t), generator.WithSeed(1))
		require.NoError(t, err)

		_, err = gen.GenerateMany(0, false)
		assert.ErrorIs(t, err, generator.ErrInvalidCount)
	})

	t.Run("unique batches contain no duplicates", func(t *testing.T) {
		gen, err := generator.New(englishPlugin(t), generator.WithSeed(99))
		require.NoError(t, err)

		words, err := gen.GenerateMany(50, true)
		require.NoError(t, err)
		require.Len(t, words, 50)

		seen := make(map[string]struct{}, len(words))
		for _, w := range words {
			_, dup := seen[w]
			assert.False(t, dup, "duplicate %q", w)
			seen[w] = struct{}{}
		}
	})

	t.Run("exhausted unique space fails", func(t *testing.T) {
		gen, err := generator.New(tinyPlugin(t),
			generator.WithLengthRange(1, 1),
			generator.WithStrictness(lang.Loose),
			generator.WithSeed(3))
		require.NoError(t, err)

		// Only one word exists, so asking for two unique ones cannot finish.
		_, err = gen.GenerateMany(2, true)
		assert.ErrorIs(t, err, generator.ErrUniqueExhausted)
	})
}

func TestGenerateEndToEnd(t *testing.T) {
	// Loose filtering over the built-in English plugin: lowercase output
	// within the default bounds, never a common word.
	gen, err := generator.New(englishPlugin(t),
		generator.WithStrictness(lang.Loose),
		generator.WithSeed(123))
	require.NoError(t, err)

	common, err := lang.Default().Get("english")
	require.NoError(t, err)
	dict := common.BuildDictionary(lang.Loose, generator.DefaultMinZipf)

	for i := 0; i < 100; i++ {
		word, err := gen.Generate()
		require.NoError(t, err)

		n := utf8.RuneCountInString(word)
		assert.GreaterOrEqual(t, n, generator.DefaultMinLength)
		assert.LessOrEqual(t, n, generator.DefaultMaxLength)
		assert.Equal(t, strings.ToLower(word), word)
		assert.False(t, dict.IsRealWord(word), "%q is a common word", word)
	}
}
