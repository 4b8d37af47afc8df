// Package config loads CLI defaults from a TOML file.
//
// The file lives at ~/.config/cliquechain/config.toml (XDG aware) and is
// optional: a missing file yields the built-in defaults, and command-line
// flags override file values. Example:
//
//	max = 12
//	labels = true
//	full_list = false
//
//	[cache]
//	backend = "file" # file, redis or none
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[store]
//	mongo_uri = "mongodb://localhost:27017"
//	database = "cliquechain"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cliquechain/pkg/errors"
)

// Cache backends selectable via the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds all file-configurable defaults.
type Config struct {
	// Max is the default upper bound for table sweeps.
	Max int `toml:"max"`

	// Labels shows "size: count" labels in breakdown rows instead of
	// bare counts.
	Labels bool `toml:"labels"`

	// FullList prints every configuration, not just the breakdown.
	FullList bool `toml:"full_list"`

	Cache CacheConfig `toml:"cache"`
	Store StoreConfig `toml:"store"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig holds connection settings for the report store.
type StoreConfig struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		Max:    12,
		Labels: true,
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Store: StoreConfig{Database: "cliquechain"},
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if c.Max < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max must be at least 1, got %d", c.Max)
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
}
