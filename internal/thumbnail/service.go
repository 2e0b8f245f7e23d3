// Package thumbnail provides the thumbnail cache service: it turns a video
// path into a displayable JPEG data URI, reusing cached results, and clears
// the cache on demand.
package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maauso/video-thumbnails/internal/media"
	"github.com/maauso/video-thumbnails/internal/metrics"
	"github.com/maauso/video-thumbnails/internal/storage"
)

// ErrEntryMissing is returned when extraction reported success but no cache
// entry can be found afterwards.
var ErrEntryMissing = errors.New("thumbnail file missing after extraction")

// DefaultMaxConcurrent is the default number of simultaneous extractions.
const DefaultMaxConcurrent = 3

// Failure kinds recorded in metrics.
const (
	failCacheDir   = "cache_dir"
	failCacheRead  = "cache_read"
	failTool       = "tool_not_found"
	failCancelled  = "cancelled"
	failExtraction = "extraction"
	failReadBack   = "read_back"
)

// Service produces and caches thumbnails.
//
// It takes no lock around a single source reference: two concurrent misses
// for the same path both run the tool and write the same entry, and the last
// writer wins. ClearCache is not synchronized with Produce either.
type Service struct {
	store     storage.Store
	tool      media.ToolResolver
	extractor media.Extractor
	mirror    storage.Mirror
	logger    *slog.Logger
	memo      *memo
	slots     chan struct{}
}

// Option configures a Service.
type Option func(*Service)

// WithMirror publishes each newly generated entry through m.
func WithMirror(m storage.Mirror) Option {
	return func(s *Service) {
		s.mirror = m
	}
}

// WithMemoEntries bounds how many data URIs are kept in memory.
func WithMemoEntries(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.memo = newMemo(n)
		}
	}
}

// WithMaxConcurrent limits how many extractions may run at once.
func WithMaxConcurrent(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.slots = make(chan struct{}, n)
		}
	}
}

// NewService creates a new Service.
func NewService(
	store storage.Store,
	tool media.ToolResolver,
	extractor media.Extractor,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:     store,
		tool:      tool,
		extractor: extractor,
		logger:    logger,
		memo:      newMemo(DefaultMemoEntries),
		slots:     make(chan struct{}, DefaultMaxConcurrent),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Produce returns the thumbnail of the video at sourceRef as a
// "data:image/jpeg;base64," URI.
//
// A cached entry is returned as-is without checking it against the video.
// A remembered URI is only reused while its entry is still on disk.
// On a miss the extraction tool is resolved and run with each attempt in
// order until one succeeds; if all fail, the last attempt's error is returned.
func (s *Service) Produce(ctx context.Context, sourceRef string) (string, error) {
	key := Key(sourceRef)

	if err := s.store.EnsureDir(); err != nil {
		s.fail(ctx, failCacheDir, sourceRef, err)
		return "", err
	}

	if uri, ok := s.memo.Get(key); ok {
		if s.store.Exists(key) {
			metrics.CacheLookupsTotal.WithLabelValues(metrics.LookupMemo).Inc()
			return uri, nil
		}
		s.memo.Forget(key)
	}

	data, ok, err := s.store.Read(key)
	if err != nil {
		s.fail(ctx, failCacheRead, sourceRef, err)
		return "", err
	}
	if ok {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.LookupDisk).Inc()
		s.logger.DebugContext(ctx, "thumbnail cache hit",
			slog.String("source", sourceRef),
			slog.String("key", key),
		)
		uri := EncodeDataURI(data)
		s.memo.Put(key, uri)
		return uri, nil
	}

	metrics.CacheLookupsTotal.WithLabelValues(metrics.LookupMiss).Inc()

	bin, err := s.tool.Resolve()
	if err != nil {
		s.fail(ctx, failTool, sourceRef, err)
		return "", err
	}

	release, err := s.acquire(ctx)
	if err != nil {
		s.fail(ctx, failCancelled, sourceRef, err)
		return "", err
	}
	attempt, err := s.extractor.ExtractFrame(ctx, bin, sourceRef, s.store.Path(key))
	release()
	if err != nil {
		s.fail(ctx, failExtraction, sourceRef, err)
		return "", err
	}

	data, ok, err = s.store.Read(key)
	if err == nil && !ok {
		err = ErrEntryMissing
	}
	if err != nil {
		err = fmt.Errorf("read back thumbnail: %w", err)
		s.fail(ctx, failReadBack, sourceRef, err)
		return "", err
	}

	s.logger.InfoContext(ctx, "thumbnail generated",
		slog.String("source", sourceRef),
		slog.String("key", key),
		slog.String("attempt", attempt.Name),
		slog.Int("bytes", len(data)),
	)

	uri := EncodeDataURI(data)
	s.memo.Put(key, uri)
	s.publish(ctx, key, data)
	return uri, nil
}

// ClearCache removes every cache entry and the cache directory, and forgets
// every produced URI. It never fails: entries that cannot be inspected or
// removed are skipped and reflected in the report.
func (s *Service) ClearCache(ctx context.Context) Report {
	res := s.store.Clear()
	s.memo.Reset()

	report := Report{
		DirMissing: res.DirMissing,
		Entries:    res.Count(),
		FreedBytes: res.Bytes(),
		Failed:     res.Failed(),
	}

	metrics.ClearedEntriesTotal.Add(float64(report.Entries))
	metrics.ClearedBytesTotal.Add(float64(report.FreedBytes))

	for _, e := range res.Entries {
		if e.RemoveErr != nil {
			s.logger.DebugContext(ctx, "cache entry not removed",
				slog.String("name", e.Name),
				slog.String("error", e.RemoveErr.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "thumbnail cache cleared",
		slog.String("dir", s.store.Dir()),
		slog.Bool("dir_missing", report.DirMissing),
		slog.Int("entries", report.Entries),
		slog.Int64("freed_bytes", report.FreedBytes),
		slog.Int("failed", report.Failed),
	)

	return report
}

// acquire waits for an extraction slot.
func (s *Service) acquire(ctx context.Context) (func(), error) {
	select {
	case s.slots <- struct{}{}:
		metrics.ActiveExtractions.Inc()
		return func() {
			<-s.slots
			metrics.ActiveExtractions.Dec()
		}, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for extraction slot: %w", ctx.Err())
	}
}

// publish mirrors a new entry; failures are logged only.
func (s *Service) publish(ctx context.Context, key string, data []byte) {
	if s.mirror == nil {
		return
	}
	url, err := s.mirror.Mirror(ctx, key, data)
	if err != nil {
		s.logger.WarnContext(ctx, "thumbnail mirror failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.DebugContext(ctx, "thumbnail mirrored",
		slog.String("key", key),
		slog.String("url", url),
	)
}

func (s *Service) fail(ctx context.Context, kind, sourceRef string, err error) {
	metrics.ProduceFailuresTotal.WithLabelValues(kind).Inc()
	s.logger.WarnContext(ctx, "thumbnail failed",
		slog.String("kind", kind),
		slog.String("source", sourceRef),
		slog.String("error", err.Error()),
	)
}
