package config

// MissingTitlePolicy decides what happens to catalog rows without a
// title at load time.
type MissingTitlePolicy string

const (
	// PolicySkip drops the offending row and counts it.
	PolicySkip MissingTitlePolicy = "skip"
	// PolicyFail aborts the whole load.
	PolicyFail MissingTitlePolicy = "fail"
)

// Config is the top-level cinematch configuration, corresponding to
// .cinematch.yml.
type Config struct {
	DataDir      string             `yaml:"data_dir" koanf:"data_dir"`
	CatalogGlobs []string           `yaml:"catalog_globs" koanf:"catalog_globs"`
	MissingTitle MissingTitlePolicy `yaml:"missing_title" koanf:"missing_title"`
	DefaultLimit int                `yaml:"default_limit" koanf:"default_limit"`
	CachePath    string             `yaml:"cache_path" koanf:"cache_path"`
	Server       ServerConfig       `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
