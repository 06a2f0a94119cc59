// Package config loads application configuration from TOML files merged
// over environment-aware defaults.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/ports"
)

// TOMLLoader implements the ConfigLoader interface using TOML files.
type TOMLLoader struct {
	localName string
}

// NewTOMLLoader creates a new TOML configuration loader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{localName: "slidesmith.toml"}
}

// Load returns the effective configuration. An explicit path must exist; an
// empty path falls back to slidesmith.toml in the working directory, which
// is optional. Whatever the file provides is merged over the defaults.
func (l *TOMLLoader) Load(ctx context.Context, path string) (*entities.Config, error) {
	defaults := GetDefaultConfig()

	explicit := path != ""
	if !explicit {
		path = l.localName
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return defaults, nil
	}

	fileCfg, err := l.loadConfig(path)
	if err != nil {
		return nil, err
	}
	merged := Merge(defaults, fileCfg)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return merged, nil
}

// WriteDefaults writes the default configuration to the given path, creating
// parent directories as needed.
func (l *TOMLLoader) WriteDefaults(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	file, err := os.Create(path) // #nosec G304 - path is operator supplied
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := toml.NewEncoder(file)
	encoder.Indent = "  "
	if err := encoder.Encode(GetDefaultConfig()); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}
	return nil
}

// loadConfig loads and validates one configuration file.
func (l *TOMLLoader) loadConfig(path string) (*entities.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var config entities.Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing TOML from %s: %w", path, err)
	}
	return &config, nil
}

// Ensure TOMLLoader implements ports.ConfigLoader.
var _ ports.ConfigLoader = (*TOMLLoader)(nil)
