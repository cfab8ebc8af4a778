package selection

import (
	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/types"
)

// Sequencer 依赖排序器。
// 对选中集合做稳定的拓扑放置：每轮取出依赖已全部就位、层优先级最高的
// worker（同层按到达顺序），直至放完。
//
// 死锁消解：当某一轮没有任何 worker 就绪（依赖指向集合外 worker，或
// 存在真实环）时，把剩余全部 worker 视为就绪，退化为层优先级排序。
// 这保证输出长度恒等于输入长度且必然终止，代价是在病态配置下不严格
// 遵守未满足的依赖。这是刻意保留的宽松策略。
type Sequencer struct {
	logger *zap.Logger
}

// NewSequencer 创建排序器
func NewSequencer(logger *zap.Logger) *Sequencer {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Sequencer{logger: logger.With(zap.String("component", "sequencer"))}
}

// Sequence 产出依赖有效的执行顺序。从不失败。
func (s *Sequencer) Sequence(selected []*types.WorkerCapability) []*types.WorkerCapability {
	remaining := append([]*types.WorkerCapability(nil), selected...)
	placed := make(map[string]bool, len(selected))
	sequence := make([]*types.WorkerCapability, 0, len(selected))

	for len(remaining) > 0 {
		ready := readyIndexes(remaining, placed)

		if len(ready) == 0 {
			// 依赖死锁：剩余全部视为就绪
			s.logger.Warn("no ready workers, breaking dependency deadlock",
				zap.Int("remaining", len(remaining)),
			)
			ready = make([]int, len(remaining))
			for i := range remaining {
				ready[i] = i
			}
		}

		// 就绪集中取层优先级最高者，平局按到达顺序
		best := ready[0]
		for _, idx := range ready[1:] {
			if remaining[idx].Tier.Priority() < remaining[best].Tier.Priority() {
				best = idx
			}
		}

		next := remaining[best]
		sequence = append(sequence, next)
		placed[next.Name] = true
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return sequence
}

// readyIndexes 返回依赖已全部就位的 worker 下标（按到达顺序）。
// 指向集合外 worker 的依赖视为未满足。
func readyIndexes(remaining []*types.WorkerCapability, placed map[string]bool) []int {
	var ready []int
	for i, w := range remaining {
		met := true
		for _, dep := range w.Dependencies {
			if !placed[dep] {
				met = false
				break
			}
		}
		if met {
			ready = append(ready, i)
		}
	}
	return ready
}
