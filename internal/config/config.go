// Package config loads the REPL's startup document: the consult files to
// load before the prompt opens and the prompt string to show. It is an
// ambient concern of the command-line front end; the resolver core has no
// knowledge of it.
package config

import (
	"os"

	"github.com/nilterm/resolver/internal/rerrors"
	"gopkg.in/yaml.v3"
)

// DefaultPrompt is used when a config file omits the prompt field, or
// when no config file is given at all.
const DefaultPrompt = "?- "

// Config is the REPL's startup document.
type Config struct {
	// ConsultFiles are loaded, in order, before the interactive prompt
	// opens.
	ConsultFiles []string `yaml:"consult_files"`
	// Prompt is the string shown before each query.
	Prompt string `yaml:"prompt"`
}

// Load reads and parses the YAML config file at path. A missing Prompt
// defaults to DefaultPrompt.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rerrors.New("config: reading %s: %v", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, rerrors.New("config: parsing %s: %v", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{Prompt: DefaultPrompt}
}
