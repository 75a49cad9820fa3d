package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/dive-course-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	searchResults   *prometheus.HistogramVec
	catalogSize     prometheus.Gauge
	catalogLoad     *prometheus.HistogramVec

	cacheHitCount        uint64
	cacheMissCount       uint64
	requestCount         uint64
	requestDurationTotal uint64
	searchCount          uint64
	emptySearchCount     uint64
	catalogCourses       int64
}

// NewMetricsService registers the HTTP, cache, search and catalog collectors
// on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	m := &MetricsService{registry: registry}

	m.requestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
	m.requestTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	m.cacheLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_cache_lookup_seconds",
		Help:    "Latency of search cache lookups",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
	m.cacheWrite = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_cache_write_seconds",
		Help:    "Latency of search cache writes",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
	m.cacheHits = factory.NewCounter(prometheus.CounterOpts{
		Name: "search_cache_hits_total",
		Help: "Search cache lookups answered from the cache",
	})
	m.cacheMisses = factory.NewCounter(prometheus.CounterOpts{
		Name: "search_cache_misses_total",
		Help: "Search cache lookups that fell through to the snapshot",
	})
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "search_cache_hit_ratio",
		Help: "Ratio of search cache hits to lookups",
	}, func() float64 { return m.hitRatio() })

	m.searchResults = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "course_search_results",
		Help:    "Number of courses returned per search",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
	}, []string{"mode"})
	m.catalogSize = factory.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_courses",
		Help: "Number of courses in the loaded catalog snapshot",
	})
	m.catalogLoad = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_load_duration_seconds",
		Help:    "Time spent building the catalog snapshot",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 { return float64(runtime.NumGoroutine()) })

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	return m
}

func (m *MetricsService) hitRatio() float64 {
	hits := atomic.LoadUint64(&m.cacheHitCount)
	total := hits + atomic.LoadUint64(&m.cacheMissCount)
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordCacheOperation counts one search cache lookup.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
		return
	}
	m.cacheMisses.Inc()
	atomic.AddUint64(&m.cacheMissCount, 1)
}

// ObserveCacheWrite tracks the duration of one search cache write.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveSearch records the size of one search result.
func (m *MetricsService) ObserveSearch(mode models.FilterMode, results int) {
	if m == nil {
		return
	}
	m.searchResults.WithLabelValues(string(mode)).Observe(float64(results))
	atomic.AddUint64(&m.searchCount, 1)
	if results == 0 {
		atomic.AddUint64(&m.emptySearchCount, 1)
	}
}

// ObserveCatalogLoad records how long building the snapshot took and its size.
func (m *MetricsService) ObserveCatalogLoad(source string, courses int, duration time.Duration) {
	if m == nil {
		return
	}
	m.catalogLoad.WithLabelValues(source).Observe(duration.Seconds())
	m.catalogSize.Set(float64(courses))
	atomic.StoreInt64(&m.catalogCourses, int64(courses))
}

// Snapshot returns aggregated metrics for the summary endpoint.
func (m *MetricsService) Snapshot() models.ServiceMetrics {
	if m == nil {
		return models.ServiceMetrics{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.ServiceMetrics{
		CatalogCourses:           int(atomic.LoadInt64(&m.catalogCourses)),
		CacheHitRatio:            m.hitRatio(),
		CacheHits:                atomic.LoadUint64(&m.cacheHitCount),
		CacheMisses:              atomic.LoadUint64(&m.cacheMissCount),
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		Searches:                 atomic.LoadUint64(&m.searchCount),
		EmptySearches:            atomic.LoadUint64(&m.emptySearchCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
