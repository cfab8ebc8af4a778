package selection

import (
	"sort"

	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// BudgetSelector 预算约束选择器。
// 在复杂度放大后的有效预算内按层纳入候选 worker：
// Core 层无条件纳入（预算对 Core 只是建议）；其余层在有效预算内
// 按（层优先级、单位成本）排序依次纳入；最高两级复杂度下
// Specialized/Advanced 层允许有界超支。
type BudgetSelector struct {
	cfg    config.EngineConfig
	logger *zap.Logger
}

// NewBudgetSelector 创建预算选择器
func NewBudgetSelector(cfg config.EngineConfig, logger *zap.Logger) *BudgetSelector {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &BudgetSelector{
		cfg:    cfg,
		logger: logger.With(zap.String("component", "budget_selector")),
	}
}

// Select 在预算约束下选出最终集合。
// 返回顺序为（层优先级、单位成本）排序后的纳入顺序；
// 这不是执行顺序，执行顺序由 Sequencer 决定。
// 负预算按 0 处理（只剩 Core 层），从不报错。
func (s *BudgetSelector) Select(candidates []*types.WorkerCapability, budget int, complexity types.ComplexityLevel) []*types.WorkerCapability {
	if budget < 0 {
		budget = 0
	}

	sorted := append([]*types.WorkerCapability(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Tier.Priority() != sorted[j].Tier.Priority() {
			return sorted[i].Tier.Priority() < sorted[j].Tier.Priority()
		}
		return sorted[i].UnitCost < sorted[j].UnitCost
	})

	multiplier := s.cfg.Multiplier(complexity)
	effectiveBudget := int(float64(budget) * multiplier)
	overflowBudget := float64(effectiveBudget) * s.cfg.OverflowAllowance
	allowOverflow := complexity.AtLeast(types.ComplexityHighlyComplex)

	var selected []*types.WorkerCapability
	spent := 0

	for _, w := range sorted {
		if s.conflictsWithSelected(w, selected) {
			s.logger.Warn("skipping conflicting worker",
				zap.String("worker", w.Name),
			)
			continue
		}

		// Core 层无条件纳入，即使单独超出预算
		if w.Tier == types.TierCore {
			selected = append(selected, w)
			spent += w.UnitCost
			continue
		}

		if spent+w.UnitCost <= effectiveBudget {
			selected = append(selected, w)
			spent += w.UnitCost
			continue
		}

		// 有界超支：仅最高两级复杂度下的 Specialized/Advanced 层
		if allowOverflow &&
			(w.Tier == types.TierSpecialized || w.Tier == types.TierAdvanced) &&
			float64(spent+w.UnitCost) <= overflowBudget {
			selected = append(selected, w)
			spent += w.UnitCost
		}
	}

	s.logger.Debug("budget selection complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("selected", len(selected)),
		zap.Int("spent", spent),
		zap.Int("effective_budget", effectiveBudget),
	)

	return selected
}

// conflictsWithSelected 检查声明的冲突关系。
// 目前注册表中冲突集始终为空，但选择器必须检查以备将来使用。
func (s *BudgetSelector) conflictsWithSelected(w *types.WorkerCapability, selected []*types.WorkerCapability) bool {
	for _, other := range selected {
		if w.ConflictsWith(other.Name) || other.ConflictsWith(w.Name) {
			return true
		}
	}
	return false
}
