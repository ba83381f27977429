// Package metrics exposes Prometheus instrumentation on a private registry.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"autobid/config"
	"autobid/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "autobid"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics owns every collector of the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	lifecycleOperations *prometheus.CounterVec
	importRows          *prometheus.CounterVec
	feedSubscribers     prometheus.Gauge
	feedDropped         prometheus.Counter
	feedPublished       *prometheus.CounterVec
}

// New registers the collectors under the configured namespace.
func New(cfg *config.Config) *Metrics {
	namespace := defaultNamespace
	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		lifecycleOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lifecycle_operations_total",
				Help:      "Soft and hard delete operations by entity, scope, type and outcome",
			},
			[]string{"entity", "scope", "type", "outcome"},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "location_import_rows_total",
				Help:      "Location import rows by outcome",
			},
			[]string{"outcome"},
		),
		feedSubscribers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_subscribers",
			Help:      "Current number of live feed subscribers",
		}),
		feedDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_dropped_events_total",
			Help:      "Feed events dropped because a subscriber buffer was full",
		}),
		feedPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feed_events_total",
				Help:      "Feed events received by type",
			},
			[]string{"type"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDBStats exports connection pool statistics of db under the given name.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) {
	if m == nil {
		return
	}
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// RecordLifecycle counts a soft or hard delete.
func (m *Metrics) RecordLifecycle(target string, req entity.DeleteRequest, err error) {
	if m == nil {
		return
	}
	m.lifecycleOperations.WithLabelValues(target, string(req.Scope), string(req.Type), outcome(err)).Inc()
}

// RecordImportRow counts one processed location import row.
func (m *Metrics) RecordImportRow(err error) {
	if m == nil {
		return
	}
	m.importRows.WithLabelValues(outcome(err)).Inc()
}

// FeedSubscribed adjusts the subscriber gauge by delta.
func (m *Metrics) FeedSubscribed(delta int) {
	if m == nil {
		return
	}
	m.feedSubscribers.Add(float64(delta))
}

// FeedDropped counts an event lost to a full subscriber buffer.
func (m *Metrics) FeedDropped() {
	if m == nil {
		return
	}
	m.feedDropped.Inc()
}

// FeedPublished counts an event entering the hub.
func (m *Metrics) FeedPublished(eventType entity.FeedEventType) {
	if m == nil {
		return
	}
	m.feedPublished.WithLabelValues(string(eventType)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}

	return OutcomeSuccess
}
