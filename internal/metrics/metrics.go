// Package metrics records per-run counters in a private Prometheus registry.
// Nothing is exposed over the network; callers read values through Gather.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "loopkata"

// Recorder owns the registry and collectors for one process.
type Recorder struct {
	registry   *prometheus.Registry
	runs       *prometheus.CounterVec
	loopSteps  *prometheus.CounterVec
	lastResult *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of completed computations, by program.",
		}, []string{"program"}),
		loopSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loop_steps_total",
			Help:      "Innermost loop evaluations performed, by algorithm.",
		}, []string{"algorithm"}),
		lastResult: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_result",
			Help:      "Result of the most recent computation, by program.",
		}, []string{"program"}),
	}
	r.registry.MustRegister(r.runs, r.loopSteps, r.lastResult)
	return r
}

// ObserveRun counts one completed computation of program and stores its result.
func (r *Recorder) ObserveRun(program string, result float64) {
	r.runs.WithLabelValues(program).Inc()
	r.lastResult.WithLabelValues(program).Set(result)
}

// AddLoopSteps adds steps loop evaluations to algorithm's counter.
func (r *Recorder) AddLoopSteps(algorithm string, steps int) {
	if steps <= 0 {
		return
	}
	r.loopSteps.WithLabelValues(algorithm).Add(float64(steps))
}

// Gather returns a snapshot of every registered metric family.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// Registry exposes the underlying registry, e.g. for testutil helpers.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
