package selection

import (
	"strings"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// RelevanceFilter 相关性过滤器。
// 决定每个 worker 是否与任务直接相关，或因复杂度足够高而被纳入。
type RelevanceFilter struct {
	cfg *config.Config
}

// NewRelevanceFilter 创建相关性过滤器
func NewRelevanceFilter(cfg *config.Config) *RelevanceFilter {
	return &RelevanceFilter{cfg: cfg}
}

// IsRelevant 判断 worker 是否与任务直接相关：
// 专长标签按分隔符切词后任一 token 命中任务文本，或精选关键词表命中。
func (f *RelevanceFilter) IsRelevant(worker *types.WorkerCapability, task string) bool {
	taskLower := strings.ToLower(task)

	for _, spec := range worker.Specializations {
		for _, token := range splitTokens(spec) {
			if token != "" && strings.Contains(taskLower, token) {
				return true
			}
		}
	}

	for _, kw := range f.cfg.Relevance[worker.Name] {
		if strings.Contains(taskLower, kw) {
			return true
		}
	}

	return false
}

// IsComplexityUseful 判断 worker 是否「因复杂度而有用」：
// Complex 及以上时 Specialized/Advanced 层一律有用；
// HighlyComplex 及以上时所有 worker 都有用。
func (f *RelevanceFilter) IsComplexityUseful(worker *types.WorkerCapability, complexity types.ComplexityLevel) bool {
	if complexity.AtLeast(types.ComplexityComplex) {
		if worker.Tier == types.TierSpecialized || worker.Tier == types.TierAdvanced {
			return true
		}
	}
	return complexity.AtLeast(types.ComplexityHighlyComplex)
}

// Filter 按层应用纳入规则，返回按名称去重的候选集（保持首次出现顺序）：
//   - Core：无条件纳入，不做相关性检查
//   - Specialized：相关即纳入；Moderate 及以上还可因复杂度纳入
//   - Advanced：仅 Complex 及以上参与，相关或 HighlyComplex/Critical 纳入
//   - Support：按 worker 的最低复杂度规则纳入
func (f *RelevanceFilter) Filter(registry *Registry, task string, complexity types.ComplexityLevel) []*types.WorkerCapability {
	var candidates []*types.WorkerCapability

	for _, w := range registry.ByTier(types.TierCore) {
		candidates = append(candidates, w)
	}

	for _, w := range registry.ByTier(types.TierSpecialized) {
		if complexity.AtLeast(types.ComplexityModerate) {
			if f.IsRelevant(w, task) || f.IsComplexityUseful(w, complexity) {
				candidates = append(candidates, w)
			}
		} else if f.IsRelevant(w, task) {
			// Simple 复杂度下 Specialized 层要求严格相关
			candidates = append(candidates, w)
		}
	}

	if complexity.AtLeast(types.ComplexityComplex) {
		for _, w := range registry.ByTier(types.TierAdvanced) {
			if f.IsRelevant(w, task) || complexity.AtLeast(types.ComplexityHighlyComplex) {
				candidates = append(candidates, w)
			}
		}
	}

	for _, w := range registry.ByTier(types.TierSupport) {
		if complexity.AtLeast(f.cfg.SupportRuleFor(w)) {
			candidates = append(candidates, w)
		}
	}

	return dedupeByName(candidates)
}

// splitTokens 按专长标签中的单词分隔符切词
func splitTokens(tag string) []string {
	return strings.FieldsFunc(strings.ToLower(tag), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
}

// dedupeByName 按名称去重，保持首次出现顺序
func dedupeByName(workers []*types.WorkerCapability) []*types.WorkerCapability {
	seen := make(map[string]bool, len(workers))
	out := make([]*types.WorkerCapability, 0, len(workers))
	for _, w := range workers {
		if seen[w.Name] {
			continue
		}
		seen[w.Name] = true
		out = append(out, w)
	}
	return out
}
