package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the pipeline engine.
type Metrics struct {
	// Run metrics
	RunsTotal   *prometheus.CounterVec
	RunDuration *prometheus.HistogramVec

	// Friction solver metrics
	SolverIterations  prometheus.Histogram
	SolverUnconverged prometheus.Counter

	// Sizing metrics
	AutoSizedPipes prometheus.Counter

	startTime time.Time
}

// NewMetrics creates a new metrics collector registered on the default
// registry.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "procflow_engine_runs_total",
				Help: "Total number of engine runs",
			},
			[]string{"mode", "outcome"},
		),
		RunDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "procflow_engine_run_duration_seconds",
				Help:    "Engine run duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"mode"},
		),
		SolverIterations: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "procflow_friction_solver_iterations",
				Help:    "Colebrook-White fixed-point iterations per solve",
				Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
			},
		),
		SolverUnconverged: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "procflow_friction_solver_unconverged_total",
				Help: "Friction solves that hit the iteration cap",
			},
		),
		AutoSizedPipes: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "procflow_auto_sized_pipes_total",
				Help: "Pipes resized to satisfy a recommended service velocity",
			},
		),
	}
}

// RecordRun records a completed engine run.
func (m *Metrics) RecordRun(mode, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(mode, outcome).Inc()
	m.RunDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordSolve records one friction-factor solve.
func (m *Metrics) RecordSolve(iterations, cap int) {
	if m == nil {
		return
	}
	m.SolverIterations.Observe(float64(iterations))
	if iterations >= cap {
		m.SolverUnconverged.Inc()
	}
}

// RecordAutoSize records a recommended-velocity pipe resize.
func (m *Metrics) RecordAutoSize() {
	if m == nil {
		return
	}
	m.AutoSizedPipes.Inc()
}
