// Package config loads the REPL's optional YAML configuration file and
// layers it under command-line flags, the way a typical tool in this
// corpus treats a config file as a base layer for defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL's tunable knobs. Zero value is not directly
// usable; start from Default.
type Config struct {
	Prompt string `yaml:"prompt"`
	Dot    bool   `yaml:"dot_mode"`
	Strict bool   `yaml:"strict_mode"`
}

// Default returns the built-in configuration, matching the distilled
// spec's REPL interface: prompt "> ", list notation, compatibility mode.
func Default() *Config {
	return &Config{Prompt: "> "}
}

// Load reads and parses the YAML file at path, starting from Default and
// overlaying whatever keys the file sets. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ApplyFlags layers explicit CLI overrides on top of the loaded config.
// An empty prompt override leaves the configured prompt untouched; dot
// and strict are OR'd in, since go-flags booleans default to false and
// can't distinguish "not passed" from "explicitly false".
func (c *Config) ApplyFlags(prompt string, dot, strict bool) {
	if prompt != "" {
		c.Prompt = prompt
	}
	c.Dot = c.Dot || dot
	c.Strict = c.Strict || strict
}
