package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		KVBackend:      "sqlite",
		SQLiteDBPath:   "./test.db",
		CacheSize:      16,
		CacheTTL:       5 * time.Minute,
		PersistTimeout: 5 * time.Second,
		LogLevel:       "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid sqlite backend config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "valid memory backend without path",
			mutate:  func(c *Config) { c.KVBackend = "memory"; c.SQLiteDBPath = "" },
			wantErr: false,
		},
		{
			name:    "cache disabled",
			mutate:  func(c *Config) { c.CacheSize = 0; c.CacheTTL = 0 },
			wantErr: false,
		},
		{
			name:        "invalid kv backend",
			mutate:      func(c *Config) { c.KVBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid kv backend 'sheets': must be one of [memory sqlite]",
		},
		{
			name:        "sqlite backend missing database path",
			mutate:      func(c *Config) { c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name:        "negative cache size",
			mutate:      func(c *Config) { c.CacheSize = -1 },
			wantErr:     true,
			errorString: "invalid cache size -1: must not be negative",
		},
		{
			name:        "cache size too large",
			mutate:      func(c *Config) { c.CacheSize = 20000 },
			wantErr:     true,
			errorString: "invalid cache size 20000: must be at most 10000",
		},
		{
			name:        "negative cache ttl",
			mutate:      func(c *Config) { c.CacheTTL = -time.Second },
			wantErr:     true,
			errorString: "invalid cache ttl -1s: must not be negative",
		},
		{
			name:        "persist timeout too short",
			mutate:      func(c *Config) { c.PersistTimeout = 10 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid persist timeout 10ms: must be at least 100ms",
		},
		{
			name:        "persist timeout too long",
			mutate:      func(c *Config) { c.PersistTimeout = time.Hour },
			wantErr:     true,
			errorString: "invalid persist timeout 1h0m0s: must be at most 5 minutes",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateAccumulatesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.KVBackend = "bogus"
	cfg.CacheSize = -5
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"invalid kv backend", "invalid cache size", "invalid log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestConfig_ValidateCreatesDatabaseDirectory(t *testing.T) {
	cfg := validConfig()
	cfg.SQLiteDBPath = filepath.Join(t.TempDir(), "nested", "spending.db")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		for _, key := range []string{"KV_BACKEND", "SQLITE_DB_PATH", "KV_CACHE_SIZE", "KV_CACHE_TTL", "PERSIST_TIMEOUT", "LOG_LEVEL"} {
			t.Setenv(key, "")
		}
		cfg := Load()

		if cfg.KVBackend != "sqlite" {
			t.Errorf("Load() KVBackend = %v, want sqlite", cfg.KVBackend)
		}
		if cfg.SQLiteDBPath != "./data/spending.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/spending.db", cfg.SQLiteDBPath)
		}
		if cfg.CacheSize != 16 {
			t.Errorf("Load() CacheSize = %v, want 16", cfg.CacheSize)
		}
		if cfg.CacheTTL != 5*time.Minute {
			t.Errorf("Load() CacheTTL = %v, want 5m", cfg.CacheTTL)
		}
		if cfg.PersistTimeout != 5*time.Second {
			t.Errorf("Load() PersistTimeout = %v, want 5s", cfg.PersistTimeout)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("KV_BACKEND", "memory")
		t.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		t.Setenv("KV_CACHE_SIZE", "64")
		t.Setenv("KV_CACHE_TTL", "30s")
		t.Setenv("PERSIST_TIMEOUT", "2s")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.KVBackend != "memory" {
			t.Errorf("Load() KVBackend = %v, want memory", cfg.KVBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.CacheSize != 64 {
			t.Errorf("Load() CacheSize = %v, want 64", cfg.CacheSize)
		}
		if cfg.CacheTTL != 30*time.Second {
			t.Errorf("Load() CacheTTL = %v, want 30s", cfg.CacheTTL)
		}
		if cfg.PersistTimeout != 2*time.Second {
			t.Errorf("Load() PersistTimeout = %v, want 2s", cfg.PersistTimeout)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		t.Setenv("KV_CACHE_SIZE", "lots")
		t.Setenv("PERSIST_TIMEOUT", "soon")

		cfg := Load()
		if cfg.CacheSize != 16 || cfg.PersistTimeout != 5*time.Second {
			t.Errorf("expected defaults, got size=%d timeout=%v", cfg.CacheSize, cfg.PersistTimeout)
		}
	})
}
