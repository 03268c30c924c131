package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

const (
	KindInt    = "int"
	KindString = "string"
)

type Config struct {
	Insert   []string `toml:"insert"`
	Remove   []string `toml:"remove"`
	Kind     string   `toml:"kind"`
	LogLevel string   `toml:"log-level"`
	Stats    bool     `toml:"stats"`
}

func defaultConfig() *Config {
	return &Config{Kind: KindInt, LogLevel: zerolog.InfoLevel.String()}
}

// Level is the parsed LogLevel. Validation guarantees it parses.
func (c *Config) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

// FromTomlFile reads a config file. Keys missing from the file keep their defaults.
func FromTomlFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no such file: %s", path)
	}

	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := validateKind(cfg.Kind); err != nil {
		return nil, fmt.Errorf("field %q: %w", "kind", err)
	}
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("field %q: %w", "log-level", err)
	}
	return cfg, nil
}
