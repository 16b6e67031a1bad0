package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)
	metrics, ok := recorder.(*PrometheusMetrics)
	require.True(t, ok)

	recorder.IncrementCounter(MetricRecommendationRequest, map[string]string{"status": "success"})
	recorder.IncrementCounter(MetricRecommendationRequest, map[string]string{"status": "success"})
	recorder.IncrementCounter(MetricCatalogLoad, map[string]string{"status": "failed"})
	recorder.IncrementCounter(MetricCatalogLookup, map[string]string{"kind": "brand"})
	recorder.IncrementCounter(MetricCatalogLookup, nil)
	recorder.IncrementCounter("unknown.metric", map[string]string{"status": "success"})

	recorder.RecordGauge(MetricCatalogSize, 42, nil)
	recorder.RecordGauge(MetricCircuitBreakerState, float64(StateOpen), map[string]string{"service": CatalogServiceName})
	recorder.RecordGauge(MetricRecommendationResults, 3, nil)
	recorder.RecordProcessingTime(MetricRecommendationDuration, 25*time.Millisecond)
	recorder.RecordProcessingTime(MetricCatalogLoadDuration, 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.recommendationRequests.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.catalogLoads.WithLabelValues("failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.catalogLookups.WithLabelValues("brand")))
	assert.Equal(t, float64(42), testutil.ToFloat64(metrics.catalogSize))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues(CatalogServiceName)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.recommendationDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.catalogLookups))
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
