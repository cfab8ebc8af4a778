package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/types"
)

func newTestSequencer() *Sequencer {
	return NewSequencer(zap.NewNop())
}

// indexOf 返回 worker 在序列中的位置，不存在时返回 -1
func indexOf(sequence []*types.WorkerCapability, name string) int {
	for i, w := range sequence {
		if w.Name == name {
			return i
		}
	}
	return -1
}

func TestSequencer_DependenciesComeFirst(t *testing.T) {
	s := newTestSequencer()
	selected := []*types.WorkerCapability{
		worker("underwriter", types.TierSpecialized, 6, "risk"),
		worker("risk", types.TierSpecialized, 6),
		worker("core", types.TierCore, 3),
	}

	sequence := s.Sequence(selected)
	assert.Less(t, indexOf(sequence, "core"), indexOf(sequence, "risk"))
	assert.Less(t, indexOf(sequence, "risk"), indexOf(sequence, "underwriter"))
}

func TestSequencer_TierPriorityAmongReady(t *testing.T) {
	s := newTestSequencer()
	selected := []*types.WorkerCapability{
		worker("sup", types.TierSupport, 4),
		worker("adv", types.TierAdvanced, 7),
		worker("spec", types.TierSpecialized, 5),
		worker("core", types.TierCore, 3),
	}

	sequence := s.Sequence(selected)
	assert.Equal(t, []string{"core", "spec", "adv", "sup"}, workerNames(sequence))
}

func TestSequencer_ArrivalOrderTieBreak(t *testing.T) {
	s := newTestSequencer()
	selected := []*types.WorkerCapability{
		worker("first", types.TierSpecialized, 5),
		worker("second", types.TierSpecialized, 5),
		worker("third", types.TierSpecialized, 5),
	}

	sequence := s.Sequence(selected)
	assert.Equal(t, []string{"first", "second", "third"}, workerNames(sequence))
}

func TestSequencer_CycleFallsBackToTierOrder(t *testing.T) {
	s := newTestSequencer()
	selected := []*types.WorkerCapability{
		worker("a", types.TierSpecialized, 5, "b"),
		worker("b", types.TierSpecialized, 5, "a"),
		worker("core", types.TierCore, 3),
	}

	sequence := s.Sequence(selected)
	assert.Len(t, sequence, 3)
	assert.Equal(t, "core", sequence[0].Name)
	// 环内成员退化为到达顺序放置
	assert.Equal(t, []string{"core", "a", "b"}, workerNames(sequence))
}

func TestSequencer_MissingDependencyDoesNotDropWorker(t *testing.T) {
	s := newTestSequencer()
	selected := []*types.WorkerCapability{
		worker("validator", types.TierSpecialized, 7, "search"),
		worker("core", types.TierCore, 3),
	}

	// "search" 不在集合内：validator 在死锁消解后仍被放置
	sequence := s.Sequence(selected)
	assert.Equal(t, []string{"core", "validator"}, workerNames(sequence))
}

func TestSequencer_LengthPreserved(t *testing.T) {
	s := newTestSequencer()
	reg := defaultRegistry(t)
	selected := reg.Workers()

	sequence := s.Sequence(selected)
	assert.Len(t, sequence, len(selected))

	seen := make(map[string]bool)
	for _, w := range sequence {
		assert.False(t, seen[w.Name])
		seen[w.Name] = true
	}
}

func TestSequencer_FullRegistryRespectsDependencies(t *testing.T) {
	s := newTestSequencer()
	reg := defaultRegistry(t)

	sequence := s.Sequence(reg.Workers())
	placed := make(map[string]bool)
	for _, w := range sequence {
		for _, dep := range w.Dependencies {
			assert.True(t, placed[dep], "worker %q placed before dependency %q", w.Name, dep)
		}
		placed[w.Name] = true
	}
}

func TestSequencer_EmptyInput(t *testing.T) {
	s := newTestSequencer()
	assert.Empty(t, s.Sequence(nil))
}
