package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ContractMetrics records lifecycle activity for rental contracts.
type ContractMetrics struct {
	created     prometheus.Counter
	transitions *prometheus.CounterVec
	conflicts   *prometheus.CounterVec
	txDuration  *prometheus.HistogramVec
}

// NewContractMetrics registers the contract metrics on the provided registerer.
// A nil registerer yields a collector whose methods are no-ops.
func NewContractMetrics(reg prometheus.Registerer) *ContractMetrics {
	if reg == nil {
		return &ContractMetrics{}
	}
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "contracts_created_total",
		Help: "Contracts created.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contract_transitions_total",
		Help: "Applied contract status transitions.",
	}, []string{"from", "to"})
	conflicts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "availability_conflicts_total",
		Help: "Requests rejected because equipment was already reserved.",
	}, []string{"stage"})
	txDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contract_command_duration_seconds",
		Help:    "Duration of contract write commands in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
	reg.MustRegister(created, transitions, conflicts, txDuration)
	return &ContractMetrics{
		created:     created,
		transitions: transitions,
		conflicts:   conflicts,
		txDuration:  txDuration,
	}
}

func (m *ContractMetrics) IncCreated() {
	if m == nil || m.created == nil {
		return
	}
	m.created.Inc()
}

// IncTransition counts a committed move from one status to another.
func (m *ContractMetrics) IncTransition(from, to string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(normalizeLabel(from), normalizeLabel(to)).Inc()
}

// IncConflict counts an availability rejection. stage is create, update or the
// reserving status being entered.
func (m *ContractMetrics) IncConflict(stage string) {
	if m == nil || m.conflicts == nil {
		return
	}
	m.conflicts.WithLabelValues(normalizeLabel(stage)).Inc()
}

func (m *ContractMetrics) ObserveCommand(command string, d time.Duration) {
	if m == nil || m.txDuration == nil {
		return
	}
	m.txDuration.WithLabelValues(normalizeLabel(command)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
