package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tunereport_runs_ingested_total",
		Help: "Total number of tuning runs accepted.",
	})
	RunsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tunereport_runs_rejected_total",
		Help: "Total number of tuning runs rejected by validation.",
	})
	ReportsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tunereport_reports_rendered_total",
		Help: "Total number of reports rendered, by format.",
	}, []string{"format"})
	ReportCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tunereport_report_cache_hits_total",
		Help: "Total number of report requests served from cache.",
	})
	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tunereport_report_render_duration_seconds",
		Help:    "Duration of a full report render, leaderboard query included.",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	})
)
