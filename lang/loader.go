package lang

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseDefinition decodes a YAML language definition. The document mirrors
// the Definition struct:
//
//	name: elvish
//	code: en
//	onsets: ["", "l", "th"]
//	nuclei: ["a", "ie"]
//	codas: ["", "n"]
//	common_words: [mellon]
//
// Validation happens in New, not here.
func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("lang: parse language definition: %w", err)
	}
	return def, nil
}

// LoadDefinitionFile reads and decodes a YAML language definition file.
func LoadDefinitionFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("lang: read language definition: %w", err)
	}
	return ParseDefinition(data)
}

// LoadPluginFile builds a plugin from a YAML language definition file.
func LoadPluginFile(path string, opts ...Option) (Plugin, error) {
	def, err := LoadDefinitionFile(path)
	if err != nil {
		return nil, err
	}
	return New(def, opts...)
}
