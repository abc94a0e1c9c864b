package config

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".cinematch.yml"

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DataDir:      "data",
		CatalogGlobs: []string{"*.csv"},
		MissingTitle: PolicySkip,
		DefaultLimit: 5,
		CachePath:    ".cinematch/cache.db",
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
