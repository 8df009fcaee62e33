package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(cacheLookups.WithLabelValues(CacheHit))
	RecordCacheLookup(CacheHit)
	RecordCacheLookup(CacheHit)
	assert.Equal(t, before+2, testutil.ToFloat64(cacheLookups.WithLabelValues(CacheHit)))
}

func TestRecordEventCreated(t *testing.T) {
	before := testutil.ToFloat64(eventsCreated)
	RecordEventCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(eventsCreated))
}

func TestRecordFetchFailure(t *testing.T) {
	before := testutil.ToFloat64(listingFetchFailures.WithLabelValues("clubs"))
	RecordFetchFailure("clubs")
	assert.Equal(t, before+1, testutil.ToFloat64(listingFetchFailures.WithLabelValues("clubs")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordHTTPRequest("GET", "/api/v1/events", 200, 15*time.Millisecond, 512)
	ObserveListing("events", 3)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{endpoint="/api/v1/events",method="GET",status="200"}`)
	assert.Contains(t, body, "party_listing_result_size_bucket")
}
