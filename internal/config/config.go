// Package config manages opensock configuration using koanf/v2.
//
// Configuration comes from environment variables only. The launcher is a
// one-shot shim that replaces itself with a child process, so there is no
// configuration file and nothing to reload.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// -------------------------------------------------------------------------
// Configuration Structures
// -------------------------------------------------------------------------

// Config holds the complete opensock configuration.
type Config struct {
	Log LogConfig `koanf:"log"`
}

// LogConfig holds the logging configuration.
//
// All log output goes to stderr: stdout belongs to the child process the
// launcher execs into and must pass through undisturbed.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	// The default is "warn" -- the launcher is silent unless something
	// goes wrong. Set OPENSOCK_LOG_LEVEL=debug to trace each launch step.
	Level string `koanf:"level"`

	// Format is the log output format: "text" or "json".
	Format string `koanf:"format"`
}

// -------------------------------------------------------------------------
// Defaults
// -------------------------------------------------------------------------

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// -------------------------------------------------------------------------
// Loader
// -------------------------------------------------------------------------

// envPrefix is the environment variable prefix for opensock configuration.
// Variables are named OPENSOCK_<section>_<key>, e.g., OPENSOCK_LOG_LEVEL.
const envPrefix = "OPENSOCK_"

// Load reads configuration from environment variable overrides (OPENSOCK_
// prefix) merged on top of DefaultConfig(). Missing variables inherit
// defaults.
//
// Environment variable mapping:
//
//	OPENSOCK_LOG_LEVEL  -> log.level
//	OPENSOCK_LOG_FORMAT -> log.format
func Load() (*Config, error) {
	k := koanf.New(".")

	// Load defaults first.
	defaults := DefaultConfig()
	if err := loadDefaults(k, defaults); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	// Load environment variable overrides on top of defaults.
	// OPENSOCK_LOG_LEVEL -> log.level (strip prefix, lowercase, _ -> .).
	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// envKeyMapper transforms OPENSOCK_LOG_LEVEL -> log.level.
// Strips the OPENSOCK_ prefix, lowercases, and replaces _ with .
func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "_", ".")
}

// loadDefaults marshals the default config into koanf as the base layer.
func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"log.level":  defaults.Log.Level,
		"log.format": defaults.Log.Format,
	}

	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// -------------------------------------------------------------------------
// Log Level Parsing
// -------------------------------------------------------------------------

// ParseLogLevel maps a configuration log level string to the corresponding
// slog.Level. Unknown values default to slog.LevelWarn.
//
// Recognized values: "debug", "info", "warn", "error" (case-insensitive).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger creates a structured logger writing to w per the log
// configuration. opensock passes os.Stderr so that stdout reaches the
// exec'd child unmodified.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLogLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
