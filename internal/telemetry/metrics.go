package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "tradescope_analyses_total", Help: "Count of indicator analyses run"},
		[]string{"symbol"},
	)
	MetricsRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "tradescope_metrics_runs_total", Help: "Count of portfolio metrics runs"},
		[]string{"symbol"},
	)
	FetchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "tradescope_fetch_errors_total", Help: "Count of market data fetch failures"},
		[]string{"source"},
	)
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tradescope_analysis_duration_seconds",
			Help:    "Wall time of one full symbol refresh (fetch + analyze + record)",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(AnalysesTotal, MetricsRunsTotal, FetchErrorsTotal, AnalysisDuration)
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
