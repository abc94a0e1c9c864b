package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("got %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cinematch.yml")
	data := `data_dir: /srv/movies
catalog_globs:
  - "**/*.csv"
default_limit: 10
server:
  port: 9090
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/srv/movies" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if !reflect.DeepEqual(cfg.CatalogGlobs, []string{"**/*.csv"}) {
		t.Errorf("catalog_globs = %v", cfg.CatalogGlobs)
	}
	if cfg.DefaultLimit != 10 {
		t.Errorf("default_limit = %d", cfg.DefaultLimit)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d", cfg.Server.Port)
	}
	// Untouched keys keep their defaults.
	if cfg.MissingTitle != PolicySkip {
		t.Errorf("missing_title = %q", cfg.MissingTitle)
	}
	if cfg.CachePath != ".cinematch/cache.db" {
		t.Errorf("cache_path = %q", cfg.CachePath)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cinematch.yml")
	if err := os.WriteFile(path, []byte("data_dir: /from/file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CINEMATCH_DATA_DIR", "/from/env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/from/env" {
		t.Errorf("data_dir = %q, want env override", cfg.DataDir)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cinematch.yml")
	want := &Config{
		DataDir:      "movies",
		CatalogGlobs: []string{"imdb*.csv", "extra/*.csv"},
		MissingTitle: PolicyFail,
		DefaultLimit: 7,
		CachePath:    "cache/rec.db",
		Server:       ServerConfig{Port: 3000, AllowAllOrigins: true},
	}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"missing data dir", func(c *Config) { c.DataDir = "" }, false},
		{"no globs", func(c *Config) { c.CatalogGlobs = nil }, false},
		{"bad policy", func(c *Config) { c.MissingTitle = "ignore" }, false},
		{"empty policy ok", func(c *Config) { c.MissingTitle = "" }, true},
		{"limit too low", func(c *Config) { c.DefaultLimit = 0 }, false},
		{"limit too high", func(c *Config) { c.DefaultLimit = 21 }, false},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
