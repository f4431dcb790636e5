package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qsplan_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qsplan_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ItemTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qsplan_item_transitions_total",
			Help: "Inspection item status transitions by target status",
		},
		[]string{"status"},
	)

	PDFExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qsplan_pdf_exports_total",
			Help: "Generated checklist PDF exports",
		},
	)
)
