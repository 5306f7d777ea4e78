package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "chartboard"
)

var (
	ChartRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "chart", "render_duration_seconds"),
		Help:    "Duration of chart rendering in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{"chart", "kind"})
	ChartCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "chart", "cache_lookups_total"),
		Help: "Chart cache lookups by the tier that served them",
	}, []string{"tier"})
	ChartRenderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "chart", "render_errors_total"),
		Help: "Chart renders that failed",
	}, []string{"chart"})
	WorkerWarmDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "warm_duration_seconds"),
		Help: "Duration of the last warm-up render in seconds",
	}, []string{"chart", "locale"})
	ExportFiles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "export", "files_total"),
		Help: "Files written by exports",
	}, []string{"destination"})
)
