// Package metrics exposes Prometheus instruments for thumbnail generation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup results recorded by CacheLookupsTotal.
const (
	LookupMemo = "memo"
	LookupDisk = "disk"
	LookupMiss = "miss"
)

var (
	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thumbnail_cache_lookups_total",
		Help: "Thumbnail requests by cache lookup result",
	}, []string{"result"})

	ExtractionAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thumbnail_extraction_attempts_total",
		Help: "Frame extraction tool invocations, by attempt and outcome",
	}, []string{"attempt", "outcome"})

	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "thumbnail_extraction_duration_seconds",
		Help:    "Wall time spent extracting a frame, across all attempts",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	ProduceFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thumbnail_produce_failures_total",
		Help: "Failed thumbnail requests, by failure kind",
	}, []string{"kind"})

	ActiveExtractions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "thumbnail_active_extractions",
		Help: "Number of frame extractions currently running",
	})

	ClearedEntriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "thumbnail_cache_cleared_entries_total",
		Help: "Cache entries removed by cache clears",
	})

	ClearedBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "thumbnail_cache_cleared_bytes_total",
		Help: "Bytes freed by cache clears",
	})
)

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
