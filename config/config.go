// Package config loads the toolkit's YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorConfig holds the defaults used by the random-formula command.
type GeneratorConfig struct {
	Pool     []string `yaml:"pool"`
	MaxDepth int      `yaml:"max_depth"`
	Seed     int64    `yaml:"seed"`
}

// Config holds the command-line front end configuration.
type Config struct {
	Debug     bool            `yaml:"debug"`
	KBPath    string          `yaml:"kb_path"`
	Generator GeneratorConfig `yaml:"generator"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		KBPath: "logic-toolkit.db",
		Generator: GeneratorConfig{
			Pool:     []string{"A", "B", "C"},
			MaxDepth: 3,
			Seed:     1,
		},
	}
}

// Load reads a YAML configuration file. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
