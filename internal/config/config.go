package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds per-directory defaults read from edmxtidy.yaml.
// Command-line flags override every field.
type ProjectConfig struct {
	// Sort is a sort method name: None, Alphabetical or StorageModel.
	Sort string `yaml:"sort,omitempty"`

	// RenameNavigation makes `sort` also rename navigation properties.
	RenameNavigation bool `yaml:"renameNavigation,omitempty"`

	// Output is an alternative output path, relative to the config directory.
	Output string `yaml:"output,omitempty"`
}

const ConfigFileName = "edmxtidy.yaml"

// Load reads edmxtidy.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveOutput returns Output resolved against dir, or "" when unset.
func (c *ProjectConfig) ResolveOutput(dir string) string {
	if c == nil || c.Output == "" {
		return ""
	}
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(dir, c.Output)
}
