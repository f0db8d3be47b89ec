package newton

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveTotal counts solver runs by stop reason
	// Labels: "converged", "flat_derivative", "stagnated", "step_limit"
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arclen_newton_solves_total",
		Help: "Newton-Raphson solver runs by stop reason",
	}, []string{"reason"})

	solveSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arclen_newton_steps",
		Help:    "Newton steps per solver run",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 50, 100},
	})
)

func observe(res Result) {
	solveTotal.WithLabelValues(res.Reason.String()).Inc()
	solveSteps.Observe(float64(res.Steps))
}
