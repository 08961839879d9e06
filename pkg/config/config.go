// Package config loads the optional kvq settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the home directory when no path is given.
const FileName = ".kvq.yaml"

type Config struct {
	// Charset of input files, e.g. utf-8 or utf-16.
	Charset string `yaml:"charset"`
	// Indent is the number of spaces per YAML level.
	Indent int `yaml:"indent"`
	// Format is the default output of merge: json or yaml.
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	Color    *bool  `yaml:"color,omitempty"`
}

func Default() Config {
	return Config{
		Charset:  "utf-8",
		Indent:   2,
		Format:   "json",
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. An empty path means
// $HOME/.kvq.yaml, which may be missing; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Indent < 1 {
		return fmt.Errorf("indent must be positive, got %d", c.Indent)
	}
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("format must be json or yaml, got %q", c.Format)
	}
	return nil
}
