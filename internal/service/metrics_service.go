package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marcriv/campushub-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides
// lightweight snapshots for the dashboard.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	kvReadLatency   prometheus.Observer
	kvWriteLatency  prometheus.Observer
	kvHitRatio      prometheus.Gauge
	kvHits          prometheus.Counter
	kvMisses        prometheus.Counter

	kvHitCount           uint64
	kvMissCount          uint64
	requestCount         uint64
	requestDurationTotal uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	kvReadLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "kv_read_seconds",
		Help:    "Latency for key-value snapshot reads",
		Buckets: prometheus.DefBuckets,
	})

	kvWriteLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "kv_write_seconds",
		Help:    "Latency for key-value snapshot writes",
		Buckets: prometheus.DefBuckets,
	})

	kvHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "kv_read_hit_ratio",
		Help: "Ratio of snapshot reads that found a value",
	})

	kvHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kv_read_hits_total",
		Help: "Total snapshot reads that found a value",
	})

	kvMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kv_read_misses_total",
		Help: "Total snapshot reads that found nothing",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, kvReadLatency, kvWriteLatency, kvHitRatio, kvHits, kvMisses, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		kvReadLatency:   kvReadLatency,
		kvWriteLatency:  kvWriteLatency,
		kvHitRatio:      kvHitRatio,
		kvHits:          kvHits,
		kvMisses:        kvMisses,
	}
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

// ObserveHTTPRequest records request metrics and aggregates simple
// stats for snapshots.
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

// RecordKVRead records a snapshot read and updates the hit ratio.
func (m *MetricsService) RecordKVRead(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.kvReadLatency != nil {
		m.kvReadLatency.Observe(duration.Seconds())
	}
	if hit {
		m.kvHits.Inc()
		atomic.AddUint64(&m.kvHitCount, 1)
	} else {
		m.kvMisses.Inc()
		atomic.AddUint64(&m.kvMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.kvHitCount)
	misses := atomic.LoadUint64(&m.kvMissCount)
	if total := hits + misses; total > 0 {
		m.kvHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveKVWrite tracks the duration of snapshot writes.
func (m *MetricsService) ObserveKVWrite(duration time.Duration) {
	if m == nil || m.kvWriteLatency == nil {
		return
	}
	m.kvWriteLatency.Observe(duration.Seconds())
}

// Snapshot returns aggregated runtime metrics for the dashboard.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	hits := atomic.LoadUint64(&m.kvHitCount)
	misses := atomic.LoadUint64(&m.kvMissCount)
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var hitRatio float64
	if total := hits + misses; total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.SystemMetrics{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		KVReads:                  hits + misses,
		KVReadHitRatio:           hitRatio,
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
