package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDirectoryFetch(t *testing.T) {
	before := testutil.ToFloat64(counter(t, "error"))

	RecordDirectoryFetch("error", 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter(t, "error")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	SetDirectoryRecords(7)
	RecordHTTPRequest(http.MethodGet, "/api/v1/doctors", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "directory_records 7")
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/v1/doctors",status="200"}`)
}

func counter(t *testing.T, result string) prometheus.Counter {
	t.Helper()
	Registry()
	return DirectoryFetchTotal.WithLabelValues(result)
}
