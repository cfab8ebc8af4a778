// =============================================================================
// 📦 AgentSelect 默认配置
// =============================================================================
// 提供所有配置项的合理默认值，包括完整的保险领域 worker 注册表、
// 复杂度指标表与相关性规则表
// =============================================================================
package config

import "time"

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Engine:     DefaultEngineConfig(),
		Oracle:     DefaultOracleConfig(),
		Log:        DefaultLogConfig(),
		Workers:    DefaultWorkers(),
		Indicators: DefaultIndicators(),
		Relevance:  DefaultRelevanceRules(),
		Support:    DefaultSupportRules(),
	}
}

// DefaultEngineConfig 返回默认引擎配置
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		BudgetMultipliers: map[string]float64{
			"simple":         1.0,
			"moderate":       1.2,
			"complex":        1.5,
			"highly_complex": 1.8,
			"critical":       2.0,
		},
		OverflowAllowance: 1.2,
		BatchConcurrency:  8,
		MetricsNamespace:  "agentselect",
	}
}

// DefaultOracleConfig 返回默认 Oracle 配置
func DefaultOracleConfig() OracleConfig {
	return OracleConfig{
		Model:          "gpt-4o-mini",
		Timeout:        10 * time.Second,
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		MaxTokens:      1024,
		Temperature:    0.2,
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "json",
	}
}

// DefaultIndicators 返回各复杂度级别的默认指标表
func DefaultIndicators() map[string]Indicator {
	return map[string]Indicator{
		"simple": {
			Keywords:        []string{"status", "information", "basic", "simple", "quick"},
			MaxEntities:     1,
			MaxSteps:        2,
			CreditThreshold: 10,
		},
		"moderate": {
			Keywords:        []string{"claim", "quote", "policy", "coverage", "assessment"},
			MaxEntities:     3,
			MaxSteps:        4,
			CreditThreshold: 25,
		},
		"complex": {
			Keywords:        []string{"investigation", "analysis", "validation", "fraud", "risk"},
			MaxEntities:     5,
			MaxSteps:        7,
			CreditThreshold: 50,
		},
		"highly_complex": {
			Keywords:        []string{"comprehensive", "multi-factor", "cross-reference", "detailed"},
			MaxEntities:     8,
			MaxSteps:        10,
			CreditThreshold: 75,
		},
		"critical": {
			Keywords:        []string{"emergency", "urgent", "critical", "immediate", "crisis"},
			MaxEntities:     12,
			MaxSteps:        15,
			CreditThreshold: 100,
		},
	}
}

// DefaultRelevanceRules 返回按 worker 名称的精选相关性关键词表
func DefaultRelevanceRules() map[string][]string {
	return map[string][]string{
		"Claims Processor":        {"claim", "filing", "process", "submit"},
		"Claims Validation Agent": {"claim", "verify", "validate", "check"},
		"Risk Analyst":            {"risk", "danger", "threat", "safety", "hazard"},
		"Fraud Investigator":      {"fraud", "suspicious", "investigate", "verify"},
		"Weather Analyst":         {"weather", "storm", "flood", "hurricane", "climate"},
		"Underwriter":             {"quote", "pricing", "premium", "coverage", "approve"},
		"ESG Specialist":          {"environmental", "sustainability", "green", "carbon"},
		"Compliance Officer":      {"compliance", "regulation", "legal", "audit"},
		"Data Analyst":            {"analysis", "data", "pattern", "trend", "statistics"},
	}
}

// DefaultSupportRules 返回 Support 层 worker 的最低复杂度规则
func DefaultSupportRules() map[string]string {
	return map[string]string{
		"Dynamic Search Agent":     "moderate",
		"Workflow Coordinator":     "moderate",
		"Quality Assurance Agent":  "complex",
		"Emergency Response Agent": "critical",
	}
}

// DefaultWorkers 返回默认的 worker 注册表
func DefaultWorkers() []WorkerConfig {
	return []WorkerConfig{
		// Core 层：基础操作必备
		{
			Name:                "Customer Service",
			Tier:                "core",
			Specializations:     []string{"communication", "basic_support", "routing"},
			ComplexityThreshold: "simple",
			UnitCost:            3,
			UnitDuration:        2,
		},
		{
			Name:                "Policy Expert",
			Tier:                "core",
			Specializations:     []string{"policy_analysis", "coverage_details", "regulations"},
			ComplexityThreshold: "simple",
			UnitCost:            4,
			UnitDuration:        3,
		},

		// Specialized 层：领域专长
		{
			Name:                "Claims Processor",
			Tier:                "specialized",
			Specializations:     []string{"claim_processing", "documentation", "workflow"},
			ComplexityThreshold: "moderate",
			UnitCost:            5,
			UnitDuration:        4,
			Dependencies:        []string{"Policy Expert"},
		},
		{
			Name:                "Claims Validation Agent",
			Tier:                "specialized",
			Specializations:     []string{"external_validation", "real_time_data", "verification"},
			ComplexityThreshold: "moderate",
			UnitCost:            7,
			UnitDuration:        5,
			Dependencies:        []string{"Dynamic Search Agent"},
		},
		{
			Name:                "Risk Analyst",
			Tier:                "specialized",
			Specializations:     []string{"risk_assessment", "threat_analysis", "safety"},
			ComplexityThreshold: "moderate",
			UnitCost:            6,
			UnitDuration:        4,
		},
		{
			Name:                "Underwriter",
			Tier:                "specialized",
			Specializations:     []string{"pricing", "risk_evaluation", "approval"},
			ComplexityThreshold: "moderate",
			UnitCost:            6,
			UnitDuration:        4,
			Dependencies:        []string{"Risk Analyst"},
		},
		{
			Name:                "Weather Analyst",
			Tier:                "specialized",
			Specializations:     []string{"weather_data", "climate_risk", "forecasting"},
			ComplexityThreshold: "moderate",
			UnitCost:            5,
			UnitDuration:        3,
			Dependencies:        []string{"Dynamic Search Agent"},
		},

		// Advanced 层：复杂分析与调查
		{
			Name:                "Fraud Investigator",
			Tier:                "advanced",
			Specializations:     []string{"fraud_detection", "pattern_analysis", "investigation"},
			ComplexityThreshold: "complex",
			UnitCost:            8,
			UnitDuration:        6,
			Dependencies:        []string{"Claims Validation Agent", "Data Analyst"},
		},
		{
			Name:                "Data Analyst",
			Tier:                "advanced",
			Specializations:     []string{"data_analysis", "pattern_recognition", "statistics"},
			ComplexityThreshold: "complex",
			UnitCost:            7,
			UnitDuration:        5,
		},
		{
			Name:                "ESG Specialist",
			Tier:                "advanced",
			Specializations:     []string{"environmental_impact", "sustainability", "compliance"},
			ComplexityThreshold: "complex",
			UnitCost:            6,
			UnitDuration:        4,
			Dependencies:        []string{"Data Analyst"},
		},
		{
			Name:                "Compliance Officer",
			Tier:                "advanced",
			Specializations:     []string{"regulatory_compliance", "legal_requirements", "audit"},
			ComplexityThreshold: "complex",
			UnitCost:            7,
			UnitDuration:        5,
			Dependencies:        []string{"Policy Expert"},
		},

		// Support 层：辅助与协调
		{
			Name:                "Dynamic Search Agent",
			Tier:                "support",
			Specializations:     []string{"real_time_search", "information_gathering", "context"},
			ComplexityThreshold: "simple",
			UnitCost:            4,
			UnitDuration:        2,
		},
		{
			Name:                "Workflow Coordinator",
			Tier:                "support",
			Specializations:     []string{"coordination", "optimization", "monitoring"},
			ComplexityThreshold: "moderate",
			UnitCost:            5,
			UnitDuration:        3,
		},
		{
			Name:                "Quality Assurance Agent",
			Tier:                "support",
			Specializations:     []string{"quality_control", "validation", "review"},
			ComplexityThreshold: "complex",
			UnitCost:            6,
			UnitDuration:        4,
		},
		{
			Name:                "Emergency Response Agent",
			Tier:                "support",
			Specializations:     []string{"emergency_handling", "crisis_management", "rapid_response"},
			ComplexityThreshold: "critical",
			UnitCost:            10,
			UnitDuration:        2,
			Dependencies:        []string{"Dynamic Search Agent"},
		},
	}
}
