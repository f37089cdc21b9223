// Package metrics holds the Prometheus instrumentation for the
// recommendation pipeline and its external collaborators.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collaborator and pipeline metrics.
var (
	InferenceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gusto",
			Name:      "inference_requests_total",
			Help:      "Total taste inference attempts per strategy",
		},
		[]string{"strategy", "status"},
	)

	InferenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gusto",
			Name:      "inference_duration_seconds",
			Help:      "Taste inference duration per strategy in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"strategy"},
	)

	CompletionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gusto",
			Name:      "completion_requests_total",
			Help:      "Total LLM completion requests",
		},
		[]string{"provider", "model", "status"},
	)

	CompletionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gusto",
			Name:      "completion_request_duration_seconds",
			Help:      "LLM completion request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"provider", "model"},
	)

	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gusto",
			Name:      "embedding_requests_total",
			Help:      "Total embedding requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gusto",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	DiscoveryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gusto",
			Name:      "discovery_requests_total",
			Help:      "Total restaurant discovery requests",
		},
		[]string{"status"},
	)

	CacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gusto",
			Name:      "inference_cache_total",
			Help:      "Inference cache hits and misses",
		},
		[]string{"kind", "result"}, // kind: "embedding"/"label", result: "hit"/"miss"
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gusto",
			Name:      "recommendations_total",
			Help:      "Completed recommendation requests by outcome",
		},
		[]string{"outcome"}, // "completed", "short_circuit", "degraded", "errored"
	)
)

var registered bool

// Register registers pipeline metrics. Must be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(InferenceRequestsTotal)
	prometheus.MustRegister(InferenceDuration)
	prometheus.MustRegister(CompletionRequestsTotal)
	prometheus.MustRegister(CompletionRequestDuration)
	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(DiscoveryRequestsTotal)
	prometheus.MustRegister(CacheTotal)
	prometheus.MustRegister(RecommendationsTotal)
	registered = true
}
