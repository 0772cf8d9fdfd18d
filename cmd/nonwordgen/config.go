package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envDefaults supplies flag defaults from the environment so repeated
// invocations can pin a configuration once (shell profile or .env file)
// instead of repeating flags. Flags always win over the environment.
type envDefaults struct {
	Language     string  `env:"NONWORDGEN_LANGUAGE" envDefault:"english"`
	Strictness   string  `env:"NONWORDGEN_STRICTNESS" envDefault:"medium"`
	MinLength    int     `env:"NONWORDGEN_MIN_LENGTH" envDefault:"4"`
	MaxLength    int     `env:"NONWORDGEN_MAX_LENGTH" envDefault:"10"`
	MinSyllables int     `env:"NONWORDGEN_MIN_SYLLABLES" envDefault:"1"`
	MaxSyllables int     `env:"NONWORDGEN_MAX_SYLLABLES" envDefault:"3"`
	MinZipf      float64 `env:"NONWORDGEN_MIN_ZIPF" envDefault:"2.7"`
}

func loadEnvDefaults() (envDefaults, error) {
	// The .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	var d envDefaults
	if err := env.Parse(&d); err != nil {
		return envDefaults{}, fmt.Errorf("parse environment defaults: %w", err)
	}
	return d, nil
}
