// Package bootstrap provides dependency initialization for the thumbnail API.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/maauso/video-thumbnails/internal/config"
	"github.com/maauso/video-thumbnails/internal/media"
	"github.com/maauso/video-thumbnails/internal/storage"
	"github.com/maauso/video-thumbnails/internal/thumbnail"
)

// Dependencies holds all initialized dependencies for the HTTP server.
type Dependencies struct {
	ThumbnailService *thumbnail.Service
}

// NewDependencies creates and initializes all dependencies for the application.
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	// The cache directory is created lazily on the first Produce.
	store := storage.NewLocalStore(cfg.CacheRoot())
	logger.Info("thumbnail cache configured",
		slog.String("cache_dir", store.Dir()),
	)

	locator := media.NewLocator(cfg.FFmpegPath, cfg.BinariesDevDir, cfg.ResourceRoot())
	logger.Info("frame extraction tool configured",
		slog.String("tool", locator.Name),
		slog.String("override", cfg.FFmpegPath),
	)

	extractor := media.NewFrameExtractor(
		media.WithAttemptTimeout(cfg.AttemptTimeout),
		media.WithLogger(logger),
	)

	opts := []thumbnail.Option{
		thumbnail.WithMaxConcurrent(cfg.MaxConcurrentExtractions),
		thumbnail.WithMemoEntries(cfg.MemoEntries),
	}

	mirror, err := initMirror(cfg, logger)
	if err != nil {
		return nil, err
	}
	if mirror != nil {
		opts = append(opts, thumbnail.WithMirror(mirror))
	}

	svc := thumbnail.NewService(store, locator, extractor, logger, opts...)

	return &Dependencies{
		ThumbnailService: svc,
	}, nil
}

// initMirror creates the S3 mirror when it is configured, or returns nil.
func initMirror(cfg *config.Config, logger *slog.Logger) (*storage.S3Mirror, error) {
	if !cfg.S3Enabled() {
		return nil, nil
	}

	s3Cfg := storage.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Prefix:          cfg.S3Prefix,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}
	mirror, err := storage.NewS3Mirror(s3Cfg)
	if err != nil {
		return nil, fmt.Errorf("create S3 mirror: %w", err)
	}
	logger.Info("S3 mirror configured",
		slog.String("bucket", cfg.S3Bucket),
		slog.String("region", cfg.S3Region),
		slog.String("prefix", cfg.S3Prefix),
	)
	return mirror, nil
}
