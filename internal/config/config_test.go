package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"CACHE_DIR",
		"FFMPEG_PATH",
		"BINARIES_DEV_DIR",
		"RESOURCE_DIR",
		"ATTEMPT_TIMEOUT",
		"MAX_CONCURRENT_EXTRACTIONS",
		"MEMO_ENTRIES",
		"S3_BUCKET",
		"S3_REGION",
		"S3_ENDPOINT",
		"S3_PREFIX",
		"AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY",
		"LOG_FORMAT",
		"LOG_LEVEL",
	} {
		// t.Setenv registers the restore; Unsetenv then removes it for the test.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.CacheDir)
	assert.Equal(t, filepath.Join(os.TempDir(), "video_manage_thumbnails"), cfg.CacheRoot())
	assert.Equal(t, "src-tauri/binaries", cfg.BinariesDevDir)
	assert.Equal(t, 30*time.Second, cfg.AttemptTimeout)
	assert.Equal(t, 3, cfg.MaxConcurrentExtractions)
	assert.Equal(t, 512, cfg.MemoEntries)
	assert.Equal(t, "thumbnails", cfg.S3Prefix)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.S3Enabled())
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("CACHE_DIR", "/custom/cache")
	t.Setenv("FFMPEG_PATH", "/opt/ffmpeg/bin/ffmpeg")
	t.Setenv("BINARIES_DEV_DIR", "bin")
	t.Setenv("RESOURCE_DIR", "/Applications/VideoManage.app/Contents/Resources")
	t.Setenv("ATTEMPT_TIMEOUT", "5s")
	t.Setenv("MAX_CONCURRENT_EXTRACTIONS", "8")
	t.Setenv("MEMO_ENTRIES", "64")
	t.Setenv("S3_BUCKET", "my-bucket")
	t.Setenv("S3_REGION", "us-east-1")
	t.Setenv("S3_PREFIX", "thumbs")
	t.Setenv("AWS_ACCESS_KEY_ID", "access-key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret-key")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "/custom/cache", cfg.CacheRoot())
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "bin", cfg.BinariesDevDir)
	assert.Equal(t, "/Applications/VideoManage.app/Contents/Resources", cfg.ResourceRoot())
	assert.Equal(t, 5*time.Second, cfg.AttemptTimeout)
	assert.Equal(t, 8, cfg.MaxConcurrentExtractions)
	assert.Equal(t, 64, cfg.MemoEntries)
	assert.Equal(t, "my-bucket", cfg.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.Equal(t, "thumbs", cfg.S3Prefix)
	assert.Equal(t, "access-key", cfg.AWSAccessKeyID)
	assert.Equal(t, "secret-key", cfg.AWSSecretAccessKey)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.S3Enabled())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("unparsable port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "not-a-number")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("zero attempt timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ATTEMPT_TIMEOUT", "0s")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidAttemptTimeout)
	})

	t.Run("zero concurrency", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAX_CONCURRENT_EXTRACTIONS", "0")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidMaxConcurrent)
	})

	t.Run("zero memo entries", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MEMO_ENTRIES", "0")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidMemoEntries)
	})
}

func TestConfig_S3Enabled(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		region   string
		expected bool
	}{
		{"both set", "bucket", "region", true},
		{"only bucket", "bucket", "", false},
		{"only region", "", "region", false},
		{"neither set", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				S3Bucket: tt.bucket,
				S3Region: tt.region,
			}
			assert.Equal(t, tt.expected, cfg.S3Enabled())
		})
	}
}

func TestConfig_ResourceRoot_DefaultsToExecutableDir(t *testing.T) {
	cfg := &Config{}

	exe, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(exe), cfg.ResourceRoot())
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{
		Port:               8080,
		CacheDir:           "/tmp/test",
		S3Bucket:           "bucket",
		S3Region:           "region",
		AWSAccessKeyID:     "access-id",
		AWSSecretAccessKey: "secret-key",
		LogFormat:          "json",
		LogLevel:           "info",
	}

	str := cfg.String()

	assert.Contains(t, str, "8080")
	assert.Contains(t, str, "/tmp/test")
	assert.Contains(t, str, "bucket")

	assert.NotContains(t, str, "secret-key")
	assert.NotContains(t, str, "access-id")
}

func TestConfig_NewLogger(t *testing.T) {
	for _, format := range []string{"json", "text", "JSON"} {
		cfg := &Config{LogFormat: format, LogLevel: "debug"}
		logger := cfg.NewLogger()
		require.NotNil(t, logger)
		assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // defaults to info
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{AttemptTimeout: time.Second, MaxConcurrentExtractions: 1, MemoEntries: 1}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("negative timeout", func(t *testing.T) {
		cfg := &Config{AttemptTimeout: -time.Second, MaxConcurrentExtractions: 1, MemoEntries: 1}
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidAttemptTimeout)
	})

	t.Run("no concurrency", func(t *testing.T) {
		cfg := &Config{AttemptTimeout: time.Second}
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidMaxConcurrent)
	})

	t.Run("no memo entries", func(t *testing.T) {
		cfg := &Config{AttemptTimeout: time.Second, MaxConcurrentExtractions: 1}
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidMemoEntries)
	})
}
