package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the request client.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "youtube_crawler_requests_total",
		Help: "Total number of Data API list requests by resource and outcome",
	}, []string{"resource", "outcome"})

	retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "youtube_crawler_retries_total",
		Help: "Total number of retry attempts by error class",
	}, []string{"error_class"})

	keyRotationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "youtube_crawler_key_rotations_total",
		Help: "Total number of quota-key rotations",
	})

	retryBackoffSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "youtube_crawler_retry_backoff_seconds",
		Help:    "Backoff duration applied before transient-error retries",
		Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
	})
)
