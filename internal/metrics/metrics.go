package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gympoint_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	DashboardLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gympoint_dashboard_loads_total",
		Help: "Dashboard load cycle outcomes",
	}, []string{"outcome"})

	DashboardLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gympoint_dashboard_load_duration_seconds",
		Help:    "Duration of a full dashboard load cycle",
		Buckets: prometheus.DefBuckets,
	})

	EnrichmentDegradedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gympoint_enrichment_degraded_total",
		Help: "Activity feeds served without identity data",
	})
)
