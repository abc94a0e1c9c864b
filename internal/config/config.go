// Package config loads and validates cinematch configuration from
// .cinematch.yml with CINEMATCH_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CINEMATCH_*). A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: CINEMATCH_DATA_DIR -> data_dir, etc.
	if err := k.Load(env.Provider("CINEMATCH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CINEMATCH_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validPolicies is the set of recognized missing-title policies.
var validPolicies = map[MissingTitlePolicy]bool{
	PolicySkip: true,
	PolicyFail: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if len(c.CatalogGlobs) == 0 {
		return fmt.Errorf("catalog_globs must list at least one pattern")
	}

	if c.MissingTitle != "" && !validPolicies[c.MissingTitle] {
		return fmt.Errorf("invalid missing_title %q: must be one of skip, fail", c.MissingTitle)
	}

	if c.DefaultLimit < 1 || c.DefaultLimit > 20 {
		return fmt.Errorf("default_limit must be between 1 and 20")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port number")
	}

	return nil
}
