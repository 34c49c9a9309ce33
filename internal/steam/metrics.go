package steam

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "achievement_hunter",
		Subsystem: "steam",
		Name:      "requests_total",
		Help:      "Steam Web API requests by endpoint and HTTP status (\"error\" for transport failures)",
	}, []string{"endpoint", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "achievement_hunter",
		Subsystem: "steam",
		Name:      "request_duration_seconds",
		Help:      "Time spent waiting for Steam Web API responses",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(requestsCounter)
	prometheus.MustRegister(requestDuration)
}

func observeRequest(endpoint string, status string, elapsed time.Duration) {
	requestsCounter.With(prometheus.Labels{
		"endpoint": endpoint,
		"status":   status,
	}).Inc()
	requestDuration.With(prometheus.Labels{
		"endpoint": endpoint,
	}).Observe(elapsed.Seconds())
}
