// Package config provides configuration loading from environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// CacheDirName is the directory created under the system temp dir when
// CACHE_DIR is not set.
const CacheDirName = "video_manage_thumbnails"

// Static errors for configuration validation.
var (
	// ErrInvalidAttemptTimeout is returned when ATTEMPT_TIMEOUT is not positive.
	ErrInvalidAttemptTimeout = errors.New("config: ATTEMPT_TIMEOUT must be positive")
	// ErrInvalidMaxConcurrent is returned when MAX_CONCURRENT_EXTRACTIONS is below 1.
	ErrInvalidMaxConcurrent = errors.New("config: MAX_CONCURRENT_EXTRACTIONS must be at least 1")
	// ErrInvalidMemoEntries is returned when MEMO_ENTRIES is below 1.
	ErrInvalidMemoEntries = errors.New("config: MEMO_ENTRIES must be at least 1")
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	Port int `env:"PORT, default=8080" json:"port"`

	// Cache settings
	CacheDir string `env:"CACHE_DIR" json:"cache_dir,omitempty"`

	// Frame extraction tool settings
	FFmpegPath     string        `env:"FFMPEG_PATH" json:"ffmpeg_path,omitempty"`
	BinariesDevDir string        `env:"BINARIES_DEV_DIR, default=src-tauri/binaries" json:"binaries_dev_dir"`
	ResourceDir    string        `env:"RESOURCE_DIR" json:"resource_dir,omitempty"`
	AttemptTimeout time.Duration `env:"ATTEMPT_TIMEOUT, default=30s" json:"attempt_timeout"`

	// Processing settings
	MaxConcurrentExtractions int `env:"MAX_CONCURRENT_EXTRACTIONS, default=3" json:"max_concurrent_extractions"`
	MemoEntries              int `env:"MEMO_ENTRIES, default=512" json:"memo_entries"`

	// Optional S3 mirror settings
	S3Bucket           string `env:"S3_BUCKET" json:"s3_bucket,omitempty"`
	S3Region           string `env:"S3_REGION" json:"s3_region,omitempty"`
	S3Endpoint         string `env:"S3_ENDPOINT" json:"s3_endpoint,omitempty"`
	S3Prefix           string `env:"S3_PREFIX, default=thumbnails" json:"s3_prefix"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" json:"-"`     // Masked in JSON
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" json:"-"` // Masked in JSON

	// Logging settings
	LogFormat string `env:"LOG_FORMAT, default=text" json:"log_format"` // "json" or "text"
	LogLevel  string `env:"LOG_LEVEL, default=info" json:"log_level"`   // "debug", "info", "warn", "error"
}

// S3Enabled returns true if S3 mirror configuration is provided.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

// CacheRoot returns the resolved thumbnail cache directory.
// It falls back to <system temp dir>/video_manage_thumbnails.
func (c *Config) CacheRoot() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return filepath.Join(os.TempDir(), CacheDirName)
}

// ResourceRoot returns the packaged resource directory. When RESOURCE_DIR is
// not set it is the directory holding the running executable.
func (c *Config) ResourceRoot() string {
	if c.ResourceDir != "" {
		return c.ResourceDir
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that numeric limits are usable.
func (c *Config) Validate() error {
	if c.AttemptTimeout <= 0 {
		return ErrInvalidAttemptTimeout
	}
	if c.MaxConcurrentExtractions < 1 {
		return ErrInvalidMaxConcurrent
	}
	if c.MemoEntries < 1 {
		return ErrInvalidMemoEntries
	}
	return nil
}

// NewLogger creates a structured logger based on the configuration.
// When LogFormat is "json", it outputs JSON logs suitable for production.
// Otherwise, it outputs human-readable text logs.
func (c *Config) NewLogger() *slog.Logger {
	level := parseLogLevel(c.LogLevel)

	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}

// String returns a string representation of the config with sensitive values masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Port: %d, CacheDir: %s, FFmpegPath: %s, BinariesDevDir: %s, ResourceDir: %s, AttemptTimeout: %s, MaxConcurrentExtractions: %d, MemoEntries: %d, S3Bucket: %s, S3Region: %s, S3Prefix: %s, LogFormat: %s, LogLevel: %s}",
		c.Port,
		c.CacheRoot(),
		c.FFmpegPath,
		c.BinariesDevDir,
		c.ResourceDir,
		c.AttemptTimeout,
		c.MaxConcurrentExtractions,
		c.MemoEntries,
		c.S3Bucket,
		c.S3Region,
		c.S3Prefix,
		c.LogFormat,
		c.LogLevel,
	)
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
