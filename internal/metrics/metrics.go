// Package metrics defines Prometheus metrics for fieldledger.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fieldledger_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldledger_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldledger_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	LoginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldledger_login_failures_total",
			Help: "Total failed login attempts",
		},
	)

	AuditQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fieldledger_audit_queue_depth",
			Help: "Current audit worker queue depth",
		},
	)

	AuditDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldledger_audit_dropped_total",
			Help: "Audit entries dropped because the queue was full",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		LoginFailures, AuditQueueDepth, AuditDropped,
	)
}
