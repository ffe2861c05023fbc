package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	QueriesProcessed    prometheus.Counter
	QueriesSkipped      prometheus.Counter
	UpstreamCalls       *prometheus.CounterVec
	ClassifierFallbacks prometheus.Counter
	ProcessingTime      prometheus.Histogram
	ErrorsCount         *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		QueriesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_processed_total",
			Help:      "The total number of flight queries answered",
		}),
		QueriesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_skipped_total",
			Help:      "The total number of queries classified as not aviation-relevant",
		}),
		UpstreamCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "The total number of upstream API calls",
		}, []string{"target"}),
		ClassifierFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifier_fallbacks_total",
			Help:      "The total number of keyword-heuristic classifier fallbacks",
		}),
		ProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_processing_time_seconds",
			Help:      "Time taken to process flight queries",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
