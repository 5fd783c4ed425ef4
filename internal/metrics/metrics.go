package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neoflix_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neoflix_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	GraphTxDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "neoflix_graph_transaction_duration_seconds",
			Help:    "Duration of Neo4j managed transactions in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode", "outcome"},
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neoflix_auth_attempts_total",
			Help: "Registration and login attempts by outcome",
		},
		[]string{"action", "outcome"},
	)
)

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveGraphTx(mode string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	GraphTxDuration.WithLabelValues(mode, outcome).Observe(elapsed.Seconds())
}

// RecordAuth counts action ("register", "login") with outcome ("success", "failure").
func RecordAuth(action string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	AuthAttempts.WithLabelValues(action, outcome).Inc()
}
