// Package config loads the optional relex.toml compatibility manifest.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"relex/internal/translate"
)

// Compat holds the knobs that track upstream tokenizer revisions.
type Compat struct {
	// SplitUnaryPlus emits a leading '+' on an integer literal as its
	// own unary-plus token instead of folding it into the payload.
	SplitUnaryPlus bool `toml:"split_unary_plus"`
}

// Config is the root of a relex.toml manifest.
type Config struct {
	Compat Compat `toml:"compat"`
}

// Default returns the configuration used when no manifest is given.
func Default() Config {
	return Config{}
}

// Load parses a relex.toml manifest. Sections absent from the file keep
// their defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Options converts the manifest into translator options.
func (c Config) Options() translate.Options {
	return translate.Options{
		SplitUnaryPlus: c.Compat.SplitUnaryPlus,
	}
}
