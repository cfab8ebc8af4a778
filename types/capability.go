package types

// Tier is the priority class of a worker. Core outranks Specialized,
// Specialized outranks Advanced, Advanced outranks Support. The ordinal
// governs inclusion order during budget filtering and tie-breaking during
// sequencing.
type Tier int

const (
	TierCore Tier = iota + 1
	TierSpecialized
	TierAdvanced
	TierSupport
)

var tierNames = map[Tier]string{
	TierCore:        "core",
	TierSpecialized: "specialized",
	TierAdvanced:    "advanced",
	TierSupport:     "support",
}

// String returns the canonical lowercase name of the tier.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText serializes the tier by name in JSON output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Priority returns the sort weight of the tier; lower means higher priority.
// Unknown tiers sort last.
func (t Tier) Priority() int {
	if _, ok := tierNames[t]; ok {
		return int(t)
	}
	return int(TierSupport) + 1
}

// Valid reports whether t is one of the four defined tiers.
func (t Tier) Valid() bool {
	_, ok := tierNames[t]
	return ok
}

// ParseTier maps a tier name to the enum. Unknown names return zero, which
// fails Valid() and is rejected by registry validation.
func ParseTier(name string) Tier {
	for tier, n := range tierNames {
		if n == name {
			return tier
		}
	}
	return 0
}

// WorkerCapability describes one selectable worker. Capabilities are defined
// at process start and never mutated afterwards, so they may be shared freely
// across concurrent selection requests.
type WorkerCapability struct {
	// Name is the unique identifier of the worker.
	Name string `json:"name" yaml:"name"`

	// Tier is the worker's priority class.
	Tier Tier `json:"tier" yaml:"tier"`

	// Specializations are topic tags; tokens of each tag are matched
	// against task text during relevance filtering.
	Specializations []string `json:"specializations" yaml:"specializations"`

	// ComplexityThreshold is the minimum complexity at which the worker
	// becomes eligible.
	ComplexityThreshold ComplexityLevel `json:"complexity_threshold" yaml:"complexity_threshold"`

	// UnitCost is the credit cost of running the worker once.
	UnitCost int `json:"unit_cost" yaml:"unit_cost"`

	// UnitDuration is the estimated duration of one run, in abstract units.
	UnitDuration int `json:"unit_duration" yaml:"unit_duration"`

	// Dependencies are worker names that must appear earlier in the final
	// sequence.
	Dependencies []string `json:"dependencies" yaml:"dependencies"`

	// Conflicts are worker names that must not co-occur with this one.
	// Reserved; currently always empty but checked by the selector.
	Conflicts []string `json:"conflicts" yaml:"conflicts"`
}

// DependsOn reports whether the worker declares a dependency on name.
func (w *WorkerCapability) DependsOn(name string) bool {
	for _, dep := range w.Dependencies {
		if dep == name {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether the worker declares a conflict with name.
func (w *WorkerCapability) ConflictsWith(name string) bool {
	for _, c := range w.Conflicts {
		if c == name {
			return true
		}
	}
	return false
}
