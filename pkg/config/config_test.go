package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cliquechain/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Max != 12 || cfg.Cache.Backend != BackendFile || !cfg.Labels {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
max = 8
labels = false
full_list = true

[cache]
backend = "redis"

[cache.redis]
addr = "redis.internal:6380"
db = 2

[store]
mongo_uri = "mongodb://db:27017"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Max != 8 {
		t.Errorf("Max = %d, want 8", cfg.Max)
	}
	if cfg.Labels || !cfg.FullList {
		t.Errorf("Labels/FullList = %v/%v, want false/true", cfg.Labels, cfg.FullList)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.Redis.Addr != "redis.internal:6380" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Store.MongoURI != "mongodb://db:27017" {
		t.Errorf("Store.MongoURI = %q", cfg.Store.MongoURI)
	}
	// Unset values keep their defaults.
	if cfg.Store.Database != "cliquechain" {
		t.Errorf("Store.Database = %q, want cliquechain", cfg.Store.Database)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "BadSyntax", content: "max = ["},
		{name: "BadBackend", content: "[cache]\nbackend = \"s3\"\n"},
		{name: "BadMax", content: "max = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}
