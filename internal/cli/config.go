package cli

import (
	"time"

	"github.com/BurntSushi/toml"

	"github.com/you-dian-tian/graphwalk/pkg/cache"
)

// Config holds defaults that commands fall back to when the matching
// flag is not set. All fields are optional in the TOML file.
type Config struct {
	// Directed selects directed edge semantics by default.
	Directed bool `toml:"directed"`

	// Order is the default traversal order for walk ("bfs" or "dfs").
	Order string `toml:"order"`

	// Start is the default traversal start vertex (0 means n/2).
	Start int `toml:"start"`

	Cache CacheConfig `toml:"cache"`
	Serve ServeConfig `toml:"serve"`
}

// CacheConfig configures the local result cache.
type CacheConfig struct {
	// Dir overrides the XDG cache directory.
	Dir string `toml:"dir"`

	// TTL is how long cached reports stay valid, e.g. "168h".
	TTL duration `toml:"ttl"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	Addr     string `toml:"addr"`
	Redis    string `toml:"redis"`
	MongoURI string `toml:"mongo_uri"`
	MongoDB  string `toml:"mongo_db"`
}

// duration wraps time.Duration so it can be written as "24h" in TOML.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Directed: true,
		Order:    "bfs",
		Cache:    CacheConfig{TTL: duration(cache.DefaultTTL)},
		Serve:    ServeConfig{Addr: ":8080", MongoDB: appName},
	}
}

// LoadConfig reads a TOML config file, applying defaults for any field
// the file leaves out.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// cacheTTL returns the configured TTL, or the package default when the
// config holds a non-positive value.
func (c Config) cacheTTL() time.Duration {
	if c.Cache.TTL <= 0 {
		return cache.DefaultTTL
	}
	return time.Duration(c.Cache.TTL)
}
