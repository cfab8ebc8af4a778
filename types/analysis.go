package types

// OracleJudgment is the structured result of an external complexity
// assessment. The engine treats the oracle as fallible and optional: when
// the call fails, DefaultJudgment is substituted and classification
// proceeds.
type OracleJudgment struct {
	Score              int             `json:"complexity_score"`
	RecommendedLevel   ComplexityLevel `json:"-"`
	Reasoning          string          `json:"reasoning"`
	RequiredExpertise  []string        `json:"required_expertise"`
	ExternalDataNeeded bool            `json:"external_data_needed"`
	EstimatedSteps     int             `json:"estimated_steps"`
	RiskLevel          string          `json:"risk_level"`

	// Fallback marks a synthesized judgment substituted after an oracle
	// failure.
	Fallback bool `json:"-"`
}

// DefaultJudgment returns the mid-range judgment substituted when the
// oracle is unavailable. Classification must never fail outright, so the
// substitution carries a moderate recommendation and a medium risk tier.
func DefaultJudgment() *OracleJudgment {
	return &OracleJudgment{
		Score:              5,
		RecommendedLevel:   ComplexityModerate,
		Reasoning:          "oracle assessment unavailable, using default judgment",
		RequiredExpertise:  []string{"general"},
		ExternalDataNeeded: false,
		EstimatedSteps:     3,
		RiskLevel:          "medium",
		Fallback:           true,
	}
}

// TaskAnalysis is the full record of one classification run. It exists for
// observability and debugging; nothing downstream branches on it except
// FinalLevel.
type TaskAnalysis struct {
	// RawTask is the input task string.
	RawTask string `json:"task"`

	// ContextFactors are recognized context flags such as
	// "location_specific" or "time_sensitive".
	ContextFactors []string `json:"context_factors"`

	// Entities are the typed fragments pulled from task and context.
	Entities []Entity `json:"entities"`

	// KeywordHits maps each complexity level to the keywords from its
	// indicator list that matched the task text.
	KeywordHits map[ComplexityLevel][]string `json:"keyword_hits"`

	// Judgment is the oracle's assessment, or the default substitution
	// when the oracle failed.
	Judgment *OracleJudgment `json:"judgment,omitempty"`

	// FinalLevel is the resolved complexity after combining all signals.
	FinalLevel ComplexityLevel `json:"final_level"`
}
