package selection

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSelection("simple", 2, time.Millisecond)
		m.ObserveOracleFallback()
	})
}

func TestMetrics_ObserveSelection(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := NewMetrics("agentselect", reg)

	m.ObserveSelection("simple", 2, 5*time.Millisecond)
	m.ObserveSelection("simple", 2, 3*time.Millisecond)
	m.ObserveSelection("critical", 8, 9*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.selectionsTotal.WithLabelValues("simple")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.selectionsTotal.WithLabelValues("critical")))
}

func TestMetrics_OracleFallbackCountedThroughEngine(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := NewMetrics("agentselect", reg)

	engine, err := NewEngine(config.DefaultConfig(), nil, failingOracle(), m, zap.NewNop())
	require.NoError(t, err)

	_, err = engine.SelectAndSequence(context.Background(), "file a claim", nil, 20)
	require.NoError(t, err)
	_, err = engine.SelectAndSequence(context.Background(), "file a claim", nil, 20)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.oracleFallbacks))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.selectionsTotal.WithLabelValues(types.ComplexityModerate.String())))
}
