package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"lg/exercise-guidance-go-api/internal/logsink"
)

// Config is read once at startup from the environment (and .env if present).
type Config struct {
	Env         string
	LogLevel    string
	Port        string
	LogSink     string
	LogCSVPath  string
	DBURL       string
	SQLitePath  string
	CORSOrigins []string
}

// loadConfig loads .env (optional) and validates the resulting settings.
func loadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := configFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFromEnv() *Config {
	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnv("PORT", "3000"),
		LogSink:     getEnv("LOG_SINK", logsink.KindCSV),
		LogCSVPath:  getEnv("LOG_CSV_PATH", "data/exercise_logs.csv"),
		DBURL:       os.Getenv("DB_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/exercise_logs.db"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func (c *Config) Validate() error {
	switch c.Env {
	case "development", "staging", "production":
	default:
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	switch c.LogSink {
	case logsink.KindCSV:
		if c.LogCSVPath == "" {
			return errors.New("LOG_CSV_PATH is required when LOG_SINK=csv")
		}
	case logsink.KindPostgres:
		if c.DBURL == "" {
			return errors.New("DB_URL is required when LOG_SINK=postgres")
		}
	case logsink.KindSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when LOG_SINK=sqlite")
		}
	case logsink.KindNone:
	default:
		return errors.New("LOG_SINK must be one of: csv, postgres, sqlite, none")
	}
	return nil
}

// sinkOptions maps the config onto logsink.Open.
func (c *Config) sinkOptions() logsink.Options {
	return logsink.Options{
		Kind:        c.LogSink,
		CSVPath:     c.LogCSVPath,
		DatabaseURL: c.DBURL,
		SQLitePath:  c.SQLitePath,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma-separated env value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
