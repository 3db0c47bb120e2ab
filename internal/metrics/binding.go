package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BindingMetrics provides observability for the custom binding engine.
// Pass nil to disable collection with zero overhead.
type BindingMetrics interface {
	// RecordEvaluation records one custom binding evaluation.
	RecordEvaluation(kind string)

	// RecordTransition records a binding evaluator crossing one of its
	// hysteresis thresholds (e.g. a dpad quadrant change, a grab engaging).
	RecordTransition(kind string)
}

// NewBindingMetrics returns a Prometheus-backed BindingMetrics, or nil if the
// registry is not enabled.
func NewBindingMetrics() BindingMetrics {
	reg := GetRegistry()
	if reg == nil {
		return (*bindingMetrics)(nil)
	}
	return &bindingMetrics{
		evaluations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "xrizer_binding_evaluations_total",
			Help: "Total custom binding evaluator invocations by kind",
		}, []string{"kind"}),
		transitions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "xrizer_binding_transitions_total",
			Help: "Total custom binding state transitions by kind",
		}, []string{"kind"}),
	}
}

type bindingMetrics struct {
	evaluations *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

func (m *bindingMetrics) RecordEvaluation(kind string) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(kind).Inc()
}

func (m *bindingMetrics) RecordTransition(kind string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(kind).Inc()
}
