package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// mockOracle implements Oracle with a function callback for testing.
type mockOracle struct {
	judgeFn func(ctx context.Context, task string, contextBag map[string]types.ContextValue, entities []string, contextFactors []string) (*types.OracleJudgment, error)
}

func (m *mockOracle) Judge(ctx context.Context, task string, contextBag map[string]types.ContextValue, entities []string, contextFactors []string) (*types.OracleJudgment, error) {
	if m.judgeFn != nil {
		return m.judgeFn(ctx, task, contextBag, entities, contextFactors)
	}
	return types.DefaultJudgment(), nil
}

// recommending returns a mock oracle that always recommends the given level.
func recommending(level types.ComplexityLevel) *mockOracle {
	return &mockOracle{
		judgeFn: func(_ context.Context, _ string, _ map[string]types.ContextValue, _ []string, _ []string) (*types.OracleJudgment, error) {
			return &types.OracleJudgment{
				Score:            5,
				RecommendedLevel: level,
				RiskLevel:        "medium",
				EstimatedSteps:   3,
			}, nil
		},
	}
}

// failingOracle returns a mock oracle whose Judge call always errors.
func failingOracle() *mockOracle {
	return &mockOracle{
		judgeFn: func(_ context.Context, _ string, _ map[string]types.ContextValue, _ []string, _ []string) (*types.OracleJudgment, error) {
			return nil, types.NewError(types.ErrCodeOracleUnavailable, "mock oracle down")
		},
	}
}

// worker builds a minimal capability for registry-level tests.
func worker(name string, tier types.Tier, cost int, deps ...string) *types.WorkerCapability {
	return &types.WorkerCapability{
		Name:                name,
		Tier:                tier,
		ComplexityThreshold: types.ComplexitySimple,
		UnitCost:            cost,
		UnitDuration:        1,
		Dependencies:        deps,
	}
}

// defaultRegistry builds the registry from the default configuration.
func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(config.DefaultConfig().Capabilities(), zap.NewNop())
	require.NoError(t, err)
	return reg
}

// newTestEngine wires an engine over the default registry with the given
// oracle and no metrics.
func newTestEngine(t *testing.T, oracle Oracle) *Engine {
	t.Helper()
	engine, err := NewEngine(config.DefaultConfig(), nil, oracle, nil, zap.NewNop())
	require.NoError(t, err)
	return engine
}
