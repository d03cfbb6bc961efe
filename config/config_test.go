package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		expect func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.ServerPort)
				assert.False(t, cfg.JournalEnabled)
				assert.Equal(t, 30, cfg.DBConnectRetries)
				assert.Equal(t, "release", cfg.GinMode)
				assert.False(t, cfg.Debug)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"SERVER_PORT":        "9000",
				"JOURNAL_ENABLED":    "true",
				"DB_CONNECT_RETRIES": "3",
				"SEED_FILE":          "network.yaml",
				"DEBUG":              "YES",
				"LOG_FORMAT":         "JSON",
			},
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9000", cfg.ServerPort)
				assert.True(t, cfg.JournalEnabled)
				assert.Equal(t, 3, cfg.DBConnectRetries)
				assert.Equal(t, "network.yaml", cfg.SeedFile)
				assert.True(t, cfg.Debug)
				assert.Equal(t, "JSON", cfg.LogFormat)
			},
		},
		{
			name: "invalid values fall back",
			env: map[string]string{
				"JOURNAL_ENABLED":    "maybe",
				"DB_CONNECT_RETRIES": "zero",
			},
			expect: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.JournalEnabled)
				assert.Equal(t, 30, cfg.DBConnectRetries)
			},
		},
		{
			name: "unknown gin mode",
			env:  map[string]string{"GIN_MODE": "verbose"},
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "release", cfg.GinMode)
			},
		},
		{
			name: "non-positive retries clamp to one",
			env:  map[string]string{"DB_CONNECT_RETRIES": "-4"},
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 1, cfg.DBConnectRetries)
			},
		},
	}

	keys := []string{"SERVER_PORT", "JOURNAL_ENABLED", "DB_CONNECT_RETRIES", "SEED_FILE", "DEBUG", "LOG_FORMAT", "GIN_MODE", "DB_PASSWORD"}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range keys {
				t.Setenv(key, "")
			}
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			tc.expect(t, Load())
		})
	}
}
