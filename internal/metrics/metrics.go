package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry
	once     sync.Once

	DirectoryFetchTotal    *prometheus.CounterVec
	DirectoryFetchDuration prometheus.Histogram
	DirectoryRecords       prometheus.Gauge
	ResultCacheLookups     *prometheus.CounterVec
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
)

// Registry returns the registry every collector of this service is registered on.
func Registry() *prometheus.Registry {
	once.Do(initialize)
	return registry
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}

func initialize() {
	registry = prometheus.NewRegistry()

	DirectoryFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_fetch_total",
			Help: "Total number of doctor directory fetches",
		},
		[]string{"result"}, // "success", "error"
	)

	DirectoryFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "directory_fetch_duration_seconds",
			Help:    "Duration of doctor directory fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DirectoryRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "directory_records",
			Help: "Number of doctor records currently held by the record store",
		},
	)

	ResultCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_result_cache_lookups_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"outcome"}, // "hit", "miss", "stale", "error"
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	registry.MustRegister(
		DirectoryFetchTotal,
		DirectoryFetchDuration,
		DirectoryRecords,
		ResultCacheLookups,
		HTTPRequestsTotal,
		HTTPRequestDuration,
		collectors.NewGoCollector(),
	)
}

// RecordDirectoryFetch records the outcome and duration of one fetch.
func RecordDirectoryFetch(result string, duration time.Duration) {
	once.Do(initialize)
	DirectoryFetchTotal.WithLabelValues(result).Inc()
	DirectoryFetchDuration.Observe(duration.Seconds())
}

func SetDirectoryRecords(n int) {
	once.Do(initialize)
	DirectoryRecords.Set(float64(n))
}

func RecordResultCacheLookup(outcome string) {
	once.Do(initialize)
	ResultCacheLookups.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest records metrics for an HTTP request
func RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	once.Do(initialize)
	status := strconv.Itoa(statusCode)
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}
