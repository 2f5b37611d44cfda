package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type OutboxMetrics struct {
	delivered *prometheus.CounterVec
}

func NewOutboxMetrics(reg prometheus.Registerer) *OutboxMetrics {
	if reg == nil {
		return &OutboxMetrics{}
	}
	delivered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contract_events_relayed_total",
		Help: "Outbox events handed to the publisher, by kind and outcome.",
	}, []string{"kind", "outcome"})
	reg.MustRegister(delivered)
	return &OutboxMetrics{delivered: delivered}
}

// IncRelayed records one publish attempt. outcome is published, retry or failed.
func (m *OutboxMetrics) IncRelayed(kind, outcome string) {
	if m == nil || m.delivered == nil {
		return
	}
	m.delivered.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}
