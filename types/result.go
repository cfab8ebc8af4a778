package types

// ResourceEstimate aggregates cost and duration for a sequenced worker set,
// adjusted by the complexity multiplier table.
type ResourceEstimate struct {
	TotalWorkers         int     `json:"total_workers"`
	BaseCost             int     `json:"base_cost"`
	AdjustedCost         int     `json:"adjusted_cost"`
	BaseDuration         int     `json:"base_duration"`
	AdjustedDuration     int     `json:"adjusted_duration"`
	BudgetUtilization    float64 `json:"budget_utilization"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	ResourceEfficiency   float64 `json:"resource_efficiency"`
}

// SelectionResult is the output of one engine run: the resolved complexity,
// the dependency-valid execution sequence, and the resource estimate.
// Results are created per request and owned exclusively by the caller.
type SelectionResult struct {
	// TraceID identifies the selection run in logs and traces.
	TraceID string `json:"trace_id"`

	// Task is the raw task string the selection was made for.
	Task string `json:"task"`

	// Complexity is the resolved complexity level.
	Complexity ComplexityLevel `json:"complexity"`

	// Analysis is the full classification record.
	Analysis *TaskAnalysis `json:"analysis,omitempty"`

	// Workers is the final execution sequence in dependency-valid order.
	Workers []*WorkerCapability `json:"workers"`

	// Estimate is the complexity-adjusted resource estimate.
	Estimate ResourceEstimate `json:"estimate"`
}

// WorkerNames returns the names of the sequenced workers in order.
func (r *SelectionResult) WorkerNames() []string {
	names := make([]string, 0, len(r.Workers))
	for _, w := range r.Workers {
		names = append(names, w.Name)
	}
	return names
}

// Contains reports whether the named worker is part of the sequence.
func (r *SelectionResult) Contains(name string) bool {
	for _, w := range r.Workers {
		if w.Name == name {
			return true
		}
	}
	return false
}
