package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Run("built-in defaults", func(t *testing.T) {
		d, err := loadEnvDefaults()
		require.NoError(t, err)

		assert.Equal(t, "english", d.Language)
		assert.Equal(t, "medium", d.Strictness)
		assert.Equal(t, 4, d.MinLength)
		assert.Equal(t, 10, d.MaxLength)
		assert.Equal(t, 1, d.MinSyllables)
		assert.Equal(t, 3, d.MaxSyllables)
		assert.InDelta(t, 2.7, d.MinZipf, 1e-9)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("NONWORDGEN_LANGUAGE", "german")
		t.Setenv("NONWORDGEN_STRICTNESS", "strict")
		t.Setenv("NONWORDGEN_MAX_LENGTH", "14")
		t.Setenv("NONWORDGEN_MIN_ZIPF", "3.1")

		d, err := loadEnvDefaults()
		require.NoError(t, err)

		assert.Equal(t, "german", d.Language)
		assert.Equal(t, "strict", d.Strictness)
		assert.Equal(t, 14, d.MaxLength)
		assert.InDelta(t, 3.1, d.MinZipf, 1e-9)
	})

	t.Run("malformed value fails", func(t *testing.T) {
		t.Setenv("NONWORDGEN_MIN_LENGTH", "four")

		_, err := loadEnvDefaults()
		assert.Error(t, err)
	})
}
