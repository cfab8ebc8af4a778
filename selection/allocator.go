package selection

import (
	"math"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// Allocator 资源分配估算器。
// 对排序后的集合计算基础/调整后的成本与时长、预算利用率与资源效率。
type Allocator struct {
	cfg config.EngineConfig
}

// NewAllocator 创建估算器
func NewAllocator(cfg config.EngineConfig) *Allocator {
	return &Allocator{cfg: cfg}
}

// Estimate 计算资源估算。
// 调整系数与预算选择器共用同一张放大表；budget <= 0 时利用率为 0，
// 决不除零。
func (a *Allocator) Estimate(sequence []*types.WorkerCapability, complexity types.ComplexityLevel, budget int) types.ResourceEstimate {
	baseCost := 0
	baseDuration := 0
	for _, w := range sequence {
		baseCost += w.UnitCost
		baseDuration += w.UnitDuration
	}

	multiplier := a.cfg.Multiplier(complexity)
	adjustedCost := int(math.Round(float64(baseCost) * multiplier))
	adjustedDuration := int(math.Round(float64(baseDuration) * multiplier))

	utilization := 0.0
	if budget > 0 {
		utilization = float64(adjustedCost) / float64(budget)
	}

	efficiency := 0.0
	if adjustedCost > 0 {
		efficiency = float64(len(sequence)) / float64(adjustedCost)
	}

	return types.ResourceEstimate{
		TotalWorkers:         len(sequence),
		BaseCost:             baseCost,
		AdjustedCost:         adjustedCost,
		BaseDuration:         baseDuration,
		AdjustedDuration:     adjustedDuration,
		BudgetUtilization:    utilization,
		ComplexityMultiplier: multiplier,
		ResourceEfficiency:   efficiency,
	}
}
