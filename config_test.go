package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv blanks every key configFromEnv reads so defaults apply.
func clearConfigEnv(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "PORT", "LOG_SINK", "LOG_CSV_PATH", "DB_URL", "SQLITE_PATH", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := configFromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "csv", cfg.LogSink)
	assert.Equal(t, "data/exercise_logs.csv", cfg.LogCSVPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_SINK", "sqlite")
	t.Setenv("SQLITE_PATH", "/var/lib/plans.db")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg := configFromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)

	opts := cfg.sinkOptions()
	assert.Equal(t, "sqlite", opts.Kind)
	assert.Equal(t, "/var/lib/plans.db", opts.SQLitePath)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutFn  func(c *Config)
		errMsg string
	}{
		{"bad env", func(c *Config) { c.Env = "qa" }, "APP_ENV"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
		{"bad port", func(c *Config) { c.Port = "http" }, "PORT"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "PORT"},
		{"postgres without url", func(c *Config) { c.LogSink = "postgres" }, "DB_URL"},
		{"csv without path", func(c *Config) { c.LogCSVPath = "" }, "LOG_CSV_PATH"},
		{"unknown sink", func(c *Config) { c.LogSink = "s3" }, "LOG_SINK"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			cfg := configFromEnv()
			tc.mutFn(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		l, err := newLogger(&Config{Env: env, LogLevel: "debug"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}
