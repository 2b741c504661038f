package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	PrayersMarkedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prayers_marked_count",
			Help: "Total number of mark-prayed calls",
		},
		[]string{"outcome"}, // outcome: marked, already_prayed, undone
	)

	TransfersCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guest_transfers_count",
			Help: "Total number of guest-to-account transfers",
		},
		[]string{"status"}, // status: success, failed, empty
	)

	ScriptureLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scripture_lookup_duration_seconds",
			Help:    "Upstream scripture API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"endpoint", "status"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementPrayersMarked(outcome string) {
	PrayersMarkedCount.WithLabelValues(outcome).Inc()
}

func IncrementTransfers(status string) {
	TransfersCount.WithLabelValues(status).Inc()
}

func RecordScriptureLookupDuration(endpoint, status string, duration time.Duration) {
	ScriptureLookupDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())
}
