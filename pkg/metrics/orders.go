package metrics

import "github.com/prometheus/client_golang/prometheus"

// OrderMetrics counts order state machine requests by action and outcome.
type OrderMetrics struct {
	transitions *prometheus.CounterVec
}

// NewOrderMetrics registers the order counters on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_transitions_total",
		Help: "Order action requests, by action and outcome.",
	}, []string{"action", "outcome"})
	reg.MustRegister(transitions)
	return &OrderMetrics{transitions: transitions}
}

// IncTransition records one processed action.
func (o *OrderMetrics) IncTransition(action, outcome string) {
	if o == nil || o.transitions == nil {
		return
	}
	o.transitions.WithLabelValues(normalizeLabel(action), normalizeLabel(outcome)).Inc()
}
