package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DispatchTotal counts store dispatches by action kind
var DispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_dispatch_total",
		Help: "Number of actions dispatched to the application store",
	},
	[]string{"action"},
)

// RemoteRequestDuration observes latency of remote product API calls
var RemoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "storefront_remote_request_duration_seconds",
		Help:    "Duration of remote product API requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation", "outcome"},
)

// LoginAttempts counts login attempts by outcome
var LoginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_login_attempts_total",
		Help: "Number of login attempts by outcome",
	},
	[]string{"outcome"},
)
