package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter("record_created", entityTags(EntityCustomer))
	metrics.IncrementCounter("record_created", entityTags(EntityCustomer))
	metrics.IncrementCounter("record_created", entityTags(EntityInteraction))
	metrics.IncrementCounter("record_deleted", entityTags(EntityCustomer))
	metrics.IncrementCounter("store_error", map[string]string{"entity": EntityCustomer, "kind": "NotFound"})
	metrics.IncrementCounter("store_error", map[string]string{"entity": EntityCustomer})
	metrics.IncrementCounter("customer_search_request", map[string]string{"status": "success"})
	metrics.IncrementCounter("unknown_counter", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.recordsCreated.WithLabelValues(EntityCustomer)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.recordsCreated.WithLabelValues(EntityInteraction)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.recordsDeleted.WithLabelValues(EntityCustomer)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.storeErrors.WithLabelValues(EntityCustomer, "NotFound")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.customerSearchRequests.WithLabelValues("success")))
}

func TestPrometheusMetrics_GaugesAndTimings(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.RecordGauge("customer_search_page_size", 10, nil)
	metrics.RecordProcessingTime("customer_search", 20*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.customerSearchDuration))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "customer_search_page_size")
	assert.Contains(t, names, "customer_search_duration_seconds")
}

func TestPrometheusMetrics_CascadedDeletesAccumulate(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.AddToCounter("interactions_cascade_deleted", 3, nil)
	metrics.AddToCounter("interactions_cascade_deleted", 2, nil)
	metrics.AddToCounter("interactions_cascade_deleted", -4, nil)
	metrics.RecordGauge("interactions_cascade_deleted", 7, nil)

	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.cascadedDeletes))
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
