package cmd

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corey/dawgset/dawg"
)

const defaultConfigFile = ".dawgset.yaml"

// Config carries the CLI's persistent settings.
type Config struct {
	DBPath       string `yaml:"db_path"`
	Dictionary   string `yaml:"dictionary"`
	WithIncoming bool   `yaml:"with_incoming"`
}

func defaultConfig() *Config {
	return &Config{
		DBPath:     "dawgset.db",
		Dictionary: "default",
	}
}

// loadConfig reads the YAML config at path, or the default config file if it
// exists, or falls back to built-in defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultConfig().DBPath
	}
	if cfg.Dictionary == "" {
		cfg.Dictionary = defaultConfig().Dictionary
	}
	return cfg, nil
}

// dictHandle pairs a loaded compact dictionary with its name.
type dictHandle struct {
	name string
	set  *dawg.CompactSet
}
