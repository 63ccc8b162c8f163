package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BillsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bills_generated_total",
			Help: "Number of monthly bills generated",
		},
	)

	PaymentsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Number of payments recorded, by method",
		},
		[]string{"method"},
	)

	PaymentsReviewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_reviewed_total",
			Help: "Number of payments accepted or declined by an admin",
		},
		[]string{"decision"},
	)
)
