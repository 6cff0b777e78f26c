package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "activities_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route"},
	)

	RegistrationOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_registration_ops_total",
			Help: "Total number of signup/unregister operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RosterSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activities_roster_size",
			Help: "Current number of participants per activity",
		},
		[]string{"activity"},
	)
)
