// Package metrics holds the Prometheus collectors of the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Alert delivery outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeDropped   = "dropped"
	OutcomeFailed    = "failed"
)

var (
	StatusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_order_status_transitions_total",
			Help: "Total number of committed order status transitions by target status",
		},
		[]string{"status"},
	)

	AlertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_alerts_total",
			Help: "Total number of alerts by type and delivery outcome",
		},
		[]string{"type", "outcome"},
	)

	TookanRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_tookan_requests_total",
			Help: "Total number of Tookan requests by direction, operation and result",
		},
		[]string{"direction", "operation", "result"},
	)

	TookanRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fleet_tookan_request_duration_seconds",
			Help:    "Duration of Tookan requests including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"direction", "operation"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "code"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fleet_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Register registers all collectors with reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		StatusTransitionsTotal,
		AlertsTotal,
		TookanRequestsTotal,
		TookanRequestDuration,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}
