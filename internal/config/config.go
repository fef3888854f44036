// Package config loads the botlang CLI's YAML configuration file, the way
// the teacher CLI keeps its flag defaults in one struct decoded up front
// rather than scattered across cobra flag vars.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/go-botlang/internal/primitives"
)

// Config is the root of the YAML document a --config flag points at.
type Config struct {
	// Primitives controls the cached built-ins.
	Primitives PrimitivesConfig `yaml:"primitives"`
	// SessionDir is where internal/session stores one JSON file per
	// conversation id. Defaults to ".botlang/sessions".
	SessionDir string `yaml:"session_dir"`
}

// PrimitivesConfig configures the installed primitive library.
type PrimitivesConfig struct {
	// HTTPTimeout bounds http-get. Zero keeps the primitives package default.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// Default returns the configuration used when no --config flag is given.
func Default() *Config {
	return &Config{SessionDir: ".botlang/sessions"}
}

// Load reads and decodes a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Apply pushes the loaded config into the package-level state it governs.
// Kept as an explicit step, not part of Load, so callers can inspect a
// Config before deciding to activate it.
func (c *Config) Apply() {
	if c.Primitives.HTTPTimeout > 0 {
		primitives.HTTPClient.Timeout = c.Primitives.HTTPTimeout
	}
}
