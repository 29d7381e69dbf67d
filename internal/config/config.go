// Package config loads service settings from HOLYMOLE_* environment variables
// and builds the logger they describe.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	ErrInvalidLogLevel  = errors.New("HOLYMOLE_LOG_LEVEL must be one of debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("HOLYMOLE_LOG_FORMAT must be text or json")
)

type Config struct {
	Addr        string // Listen address (HOLYMOLE_ADDR, default: :8000)
	DBPath      string // SQLite inventory file (HOLYMOLE_DB_PATH, default: holymole.db)
	MenuFile    string // YAML menu overriding the embedded one (HOLYMOLE_MENU_FILE, optional)
	LogLevel    string // HOLYMOLE_LOG_LEVEL, default: info
	LogFormat   string // HOLYMOLE_LOG_FORMAT, default: text
	CorsOrigin  string // CORS_ALLOWED_ORIGIN, default: *
	SeedOnStart bool   // Seed an empty inventory at startup (HOLYMOLE_SEED_ON_START)
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:        envOrDefault("HOLYMOLE_ADDR", ":8000"),
		DBPath:      envOrDefault("HOLYMOLE_DB_PATH", "holymole.db"),
		MenuFile:    os.Getenv("HOLYMOLE_MENU_FILE"),
		LogLevel:    strings.ToLower(envOrDefault("HOLYMOLE_LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(envOrDefault("HOLYMOLE_LOG_FORMAT", "text")),
		CorsOrigin:  envOrDefault("CORS_ALLOWED_ORIGIN", "*"),
		SeedOnStart: envBool("HOLYMOLE_SEED_ON_START"),
	}

	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat)
	}

	return cfg, nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds a logger for the configured level and format. It does not
// touch the global logger.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevels[c.LogLevel]}

	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
