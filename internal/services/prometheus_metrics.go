package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricRecommendationRequest  = "recommendation.request"
	MetricRecommendationDuration = "recommendation.duration"
	MetricRecommendationResults  = "recommendation.results"
	MetricCatalogLoad            = "catalog.load"
	MetricCatalogLoadDuration    = "catalog.load.duration"
	MetricCatalogSize            = "catalog.size"
	MetricCatalogLookup          = "catalog.lookup"
	MetricCircuitBreakerState    = "circuit_breaker.state"
)

type PrometheusMetrics struct {
	recommendationRequests *prometheus.CounterVec
	recommendationDuration prometheus.Histogram
	recommendationResults  prometheus.Histogram
	catalogLoads           *prometheus.CounterVec
	catalogLoadDuration    prometheus.Histogram
	catalogSize            prometheus.Gauge
	catalogLookups         *prometheus.CounterVec
	circuitBreakerState    *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the recommendation metrics with reg.
// A nil registerer uses the default prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		recommendationRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_requests_total",
				Help: "Total number of recommendation requests by outcome",
			},
			[]string{"status"},
		),
		recommendationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendation_duration_milliseconds",
				Help:    "Recommendation computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		recommendationResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recommendation_results",
				Help:    "Number of recommendations returned per request",
				Buckets: prometheus.LinearBuckets(0, 1, MaxRecommendations+1),
			},
		),
		catalogLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_loads_total",
				Help: "Total number of card catalog loads by outcome",
			},
			[]string{"status"},
		),
		catalogLoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_load_duration_milliseconds",
				Help:    "Card catalog load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		catalogSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_cards",
				Help: "Number of active cards in the last loaded catalog",
			},
		),
		catalogLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_lookups_total",
				Help: "Total number of category, subcategory and brand lookups",
			},
			[]string{"kind"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricRecommendationRequest:
		if status := tags["status"]; status != "" {
			m.recommendationRequests.WithLabelValues(status).Inc()
		}
	case MetricCatalogLoad:
		if status := tags["status"]; status != "" {
			m.catalogLoads.WithLabelValues(status).Inc()
		}
	case MetricCatalogLookup:
		if kind := tags["kind"]; kind != "" {
			m.catalogLookups.WithLabelValues(kind).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRecommendationDuration:
		m.recommendationDuration.Observe(float64(duration.Milliseconds()))
	case MetricCatalogLoadDuration:
		m.catalogLoadDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricRecommendationResults:
		m.recommendationResults.Observe(value)
	case MetricCatalogSize:
		m.catalogSize.Set(value)
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
