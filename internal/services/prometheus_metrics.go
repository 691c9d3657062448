package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	recordsCreated         *prometheus.CounterVec
	recordsUpdated         *prometheus.CounterVec
	recordsDeleted         *prometheus.CounterVec
	cascadedDeletes        prometheus.Counter
	storeErrors            *prometheus.CounterVec
	customerSearchRequests *prometheus.CounterVec
	customerSearchDuration prometheus.Histogram
	customerSearchPageSize prometheus.Histogram
}

// NewPrometheusMetrics registers the record store metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		recordsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "records_created_total",
				Help: "Total number of records created by entity",
			},
			[]string{"entity"},
		),
		recordsUpdated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "records_updated_total",
				Help: "Total number of records updated by entity",
			},
			[]string{"entity"},
		),
		recordsDeleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "records_deleted_total",
				Help: "Total number of records deleted by entity",
			},
			[]string{"entity"},
		),
		cascadedDeletes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "interactions_cascade_deleted_total",
				Help: "Total number of interactions removed together with their customer",
			},
		),
		storeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_store_errors_total",
				Help: "Total number of caller-facing store errors by entity and kind",
			},
			[]string{"entity", "kind"},
		),
		customerSearchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_search_requests_total",
				Help: "Total number of customer search requests",
			},
			[]string{"status"},
		),
		customerSearchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_search_duration_seconds",
				Help:    "Customer search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		customerSearchPageSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_search_page_size",
				Help:    "Number of customers returned per search page",
				Buckets: prometheus.ExponentialBuckets(1, 2, 11),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	entity := tags["entity"]

	switch name {
	case "record_created":
		m.recordsCreated.WithLabelValues(entity).Inc()
	case "record_updated":
		m.recordsUpdated.WithLabelValues(entity).Inc()
	case "record_deleted":
		m.recordsDeleted.WithLabelValues(entity).Inc()
	case "store_error":
		if kind := tags["kind"]; kind != "" {
			m.storeErrors.WithLabelValues(entity, kind).Inc()
		}
	case "customer_search_request":
		if status := tags["status"]; status != "" {
			m.customerSearchRequests.WithLabelValues(status).Inc()
		}
	}
}

// AddToCounter adds value to a counter. Negative values are ignored.
func (m *PrometheusMetrics) AddToCounter(name string, value float64, tags map[string]string) {
	if value < 0 {
		return
	}

	switch name {
	case "interactions_cascade_deleted":
		m.cascadedDeletes.Add(value)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "customer_search":
		m.customerSearchDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "customer_search_page_size":
		m.customerSearchPageSize.Observe(value)
	}
}
