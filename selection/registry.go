package selection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/types"
)

// Registry 能力注册表。
// 进程启动时加载一次，此后只读，可被任意数量的并发请求共享而无需加锁。
type Registry struct {
	workers []*types.WorkerCapability
	byName  map[string]*types.WorkerCapability

	logger *zap.Logger
}

// NewRegistry 创建并校验注册表。
// 致命错误（空注册表、重名、非法 tier、非正成本、缺少 Core 层）在这里
// 以 ErrInvalidRegistry 暴露，而不是推迟到请求时。
// 依赖环与悬空依赖只告警：排序器在请求时以宽松策略消解（见 Sequencer）。
func NewRegistry(workers []*types.WorkerCapability, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	logger = logger.With(zap.String("component", "registry"))

	if len(workers) == 0 {
		return nil, types.NewError(types.ErrCodeInvalidRegistry, "registry is empty").
			WithCause(types.ErrInvalidRegistry)
	}

	byName := make(map[string]*types.WorkerCapability, len(workers))
	hasCore := false

	for _, w := range workers {
		if w.Name == "" {
			return nil, types.NewError(types.ErrCodeInvalidRegistry, "worker with empty name").
				WithCause(types.ErrInvalidRegistry)
		}
		if _, dup := byName[w.Name]; dup {
			return nil, types.NewError(types.ErrCodeInvalidRegistry,
				fmt.Sprintf("duplicate worker name %q", w.Name)).
				WithCause(types.ErrInvalidRegistry)
		}
		if !w.Tier.Valid() {
			return nil, types.NewError(types.ErrCodeInvalidRegistry,
				fmt.Sprintf("worker %q has invalid tier", w.Name)).
				WithCause(types.ErrInvalidRegistry)
		}
		if w.UnitCost <= 0 || w.UnitDuration <= 0 {
			return nil, types.NewError(types.ErrCodeInvalidRegistry,
				fmt.Sprintf("worker %q must have positive cost and duration", w.Name)).
				WithCause(types.ErrInvalidRegistry)
		}
		byName[w.Name] = w
		if w.Tier == types.TierCore {
			hasCore = true
		}
	}

	if !hasCore {
		return nil, types.NewError(types.ErrCodeInvalidRegistry, "registry has no core-tier workers").
			WithCause(types.ErrInvalidRegistry)
	}

	r := &Registry{
		workers: append([]*types.WorkerCapability(nil), workers...),
		byName:  byName,
		logger:  logger,
	}

	for _, w := range workers {
		for _, dep := range w.Dependencies {
			if _, ok := byName[dep]; !ok {
				logger.Warn("worker depends on unregistered worker",
					zap.String("worker", w.Name),
					zap.String("dependency", dep),
				)
			}
		}
	}

	if cycle := r.findCycle(); len(cycle) > 0 {
		logger.Warn("dependency cycle in registry, sequencer will resolve leniently",
			zap.Strings("cycle", cycle),
		)
	}

	return r, nil
}

// Workers 返回全部 worker（副本切片，元素共享）
func (r *Registry) Workers() []*types.WorkerCapability {
	return append([]*types.WorkerCapability(nil), r.workers...)
}

// ByTier 返回指定层的全部 worker，保持注册顺序
func (r *Registry) ByTier(tier types.Tier) []*types.WorkerCapability {
	var out []*types.WorkerCapability
	for _, w := range r.workers {
		if w.Tier == tier {
			out = append(out, w)
		}
	}
	return out
}

// Get 按名称查找 worker
func (r *Registry) Get(name string) (*types.WorkerCapability, bool) {
	w, ok := r.byName[name]
	return w, ok
}

// Len 返回注册的 worker 数量
func (r *Registry) Len() int {
	return len(r.workers)
}

// findCycle 在依赖图中查找一个环，返回环上的 worker 名称。
// 悬空依赖不计入环。
func (r *Registry) findCycle() []string {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)

	state := make(map[string]int, len(r.workers))
	var cycle []string

	var visit func(name string, path []string) bool
	visit = func(name string, path []string) bool {
		w, ok := r.byName[name]
		if !ok {
			return false
		}
		switch state[name] {
		case visiting:
			// 截取 path 中环的起点
			for i, n := range path {
				if n == name {
					cycle = append([]string(nil), path[i:]...)
					return true
				}
			}
			cycle = append([]string(nil), path...)
			return true
		case done:
			return false
		}

		state[name] = visiting
		for _, dep := range w.Dependencies {
			if visit(dep, append(path, name)) {
				return true
			}
		}
		state[name] = done
		return false
	}

	for _, w := range r.workers {
		if state[w.Name] == unvisited {
			if visit(w.Name, nil) {
				return cycle
			}
		}
	}
	return nil
}
