package bspline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arclen_bspline_cache_builds_total",
		Help: "Span-length caches built, one per spline construction",
	})

	spansPerBuild = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arclen_bspline_spans",
		Help:    "Number of spans measured per cache build",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
	})
)
