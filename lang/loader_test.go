package lang_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taggedzi/nonwordgen/lang"
)

const elvishYAML = `name: elvish
code: en
onsets: ["", "l", "th", "gal"]
nuclei: ["a", "ie", "o"]
codas: ["", "n", "dh"]
common_words: [mellon, mae]
curated_words: [lembas]
`

func writeDefinitionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "elvish.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseDefinition(t *testing.T) {
	def, err := lang.ParseDefinition([]byte(elvishYAML))
	require.NoError(t, err)

	assert.Equal(t, "elvish", def.Name)
	assert.Equal(t, "en", def.Code)
	assert.Contains(t, def.Onsets, "gal")
	assert.Equal(t, []string{"mellon", "mae"}, def.CommonWords)
	assert.Equal(t, []string{"lembas"}, def.CuratedWords)

	t.Run("malformed document", func(t *testing.T) {
		_, err := lang.ParseDefinition([]byte("name: [unterminated"))
		assert.Error(t, err)
	})
}

func TestLoadPluginFile(t *testing.T) {
	t.Run("builds a working plugin", func(t *testing.T) {
		path := writeDefinitionFile(t, elvishYAML)

		p, err := lang.LoadPluginFile(path)
		require.NoError(t, err)
		assert.Equal(t, "elvish", p.Name())

		dict := p.BuildDictionary(lang.Strict, 2.7)
		assert.True(t, dict.IsRealWord("mellon"))
		assert.True(t, dict.IsRealWord("lembas"))
		assert.False(t, dict.IsRealWord("snarp"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := lang.LoadPluginFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("definition failing validation", func(t *testing.T) {
		path := writeDefinitionFile(t, "name: broken\ncode: \"not a tag\"\n")
		_, err := lang.LoadPluginFile(path)
		assert.ErrorIs(t, err, lang.ErrInvalidCode)
	})
}
