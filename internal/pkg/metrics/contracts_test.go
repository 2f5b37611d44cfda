//go:build unit

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractMetrics(t *testing.T) {
	t.Run("counters are exported with labels", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := NewContractMetrics(reg)

		m.IncCreated()
		m.IncCreated()
		m.IncTransition("pending_approval", "approved")
		m.IncConflict("approve")
		m.IncConflict("")
		m.ObserveCommand("create", 120*time.Millisecond)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.created))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("pending_approval", "approved")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.conflicts.WithLabelValues("approve")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.conflicts.WithLabelValues("unknown")))

		count, err := testutil.GatherAndCount(reg, "contract_command_duration_seconds")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("nil registerer is a no-op", func(t *testing.T) {
		m := NewContractMetrics(nil)
		assert.NotPanics(t, func() {
			m.IncCreated()
			m.IncTransition("draft", "cancelled")
			m.IncConflict("create")
			m.ObserveCommand("create", time.Second)
		})

		var nilMetrics *ContractMetrics
		assert.NotPanics(t, func() { nilMetrics.IncCreated() })
	})
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/contracts/:id", 200, 10*time.Millisecond)
	m.Observe("GET", "", 404, time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
