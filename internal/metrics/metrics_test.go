package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheLookupsTotal(t *testing.T) {
	before := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues(LookupMiss))

	CacheLookupsTotal.WithLabelValues(LookupMiss).Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues(LookupMiss)))
}

func TestActiveExtractions(t *testing.T) {
	ActiveExtractions.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(ActiveExtractions))
	ActiveExtractions.Dec()
	assert.Equal(t, float64(0), testutil.ToFloat64(ActiveExtractions))
}

func TestHandler(t *testing.T) {
	ExtractionAttemptsTotal.WithLabelValues("seek-after-input", "success").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `thumbnail_extraction_attempts_total{attempt="seek-after-input",outcome="success"}`)
	assert.Contains(t, body, "thumbnail_active_extractions")
	assert.Contains(t, body, "thumbnail_cache_cleared_bytes_total")
}
