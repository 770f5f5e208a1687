// Package observability bridges traversal lifecycle hooks to Prometheus
// metrics.
package observability

import (
	"context"

	"github.com/canopyhq/canopy"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the traversal metric instruments.
type Metrics struct {
	accepted *prometheus.CounterVec
	denied   *prometheus.CounterVec
	walks    prometheus.Histogram
}

// NewMetrics creates and registers the traversal metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		accepted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_nodes_accepted_total",
				Help: "Total number of accepted nodes, by primary type",
			},
			[]string{"primary_type"},
		),
		denied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canopy_nodes_denied_total",
				Help: "Total number of denied nodes, by primary type",
			},
			[]string{"primary_type"},
		),
		walks: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "canopy_walk_duration_seconds",
				Help: "Duration of complete traversals",
			},
		),
	}
	reg.MustRegister(m.accepted, m.denied, m.walks)
	return m
}

// Hooks returns lifecycle hooks that record into the metrics. Pass them to
// Builder.SetHooks.
func (m *Metrics) Hooks() canopy.Hooks {
	return canopy.Hooks{
		OnAccept: func(_ context.Context, e *canopy.NodeEvent) {
			m.accepted.WithLabelValues(e.PrimaryType).Inc()
		},
		OnDeny: func(_ context.Context, e *canopy.NodeEvent) {
			m.denied.WithLabelValues(e.PrimaryType).Inc()
		},
		OnWalkEnd: func(_ context.Context, e *canopy.WalkEvent) {
			m.walks.Observe(e.Duration.Seconds())
		},
	}
}
