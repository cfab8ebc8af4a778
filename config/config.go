// =============================================================================
// 📦 AgentSelect 配置结构
// =============================================================================
// 选择引擎的全部声明式配置：worker 注册表、复杂度指标表、相关性规则表、
// 预算策略与 Oracle 客户端配置。
//
// 关键设计：分类器与相关性过滤器共用同一份关键词配置，加载一次，
// 避免多处硬编码表之间产生漂移。
// =============================================================================
package config

import (
	"time"

	"github.com/BaSui01/agentselect/types"
)

// Config 是选择引擎的完整配置结构
type Config struct {
	// Engine 引擎预算与并发配置
	Engine EngineConfig `yaml:"engine"`

	// Oracle 复杂度评估服务配置
	Oracle OracleConfig `yaml:"oracle"`

	// Log 日志配置
	Log LogConfig `yaml:"log"`

	// Workers 能力注册表（进程启动时加载，此后只读）
	Workers []WorkerConfig `yaml:"workers"`

	// Indicators 按复杂度级别的指标表（关键词及元数据）
	Indicators map[string]Indicator `yaml:"indicators"`

	// Relevance 按 worker 名称的精选相关性关键词表
	Relevance map[string][]string `yaml:"relevance"`

	// Support Support 层 worker 的最低复杂度规则（按名称）
	Support map[string]string `yaml:"support"`
}

// EngineConfig 引擎配置
type EngineConfig struct {
	// 各复杂度级别的预算放大系数
	BudgetMultipliers map[string]float64 `yaml:"budget_multipliers"`
	// 最高两级复杂度下的有界超支系数（可调策略常量）
	OverflowAllowance float64 `yaml:"overflow_allowance"`
	// 批量选择的最大并发
	BatchConcurrency int `yaml:"batch_concurrency"`
	// Prometheus 指标命名空间
	MetricsNamespace string `yaml:"metrics_namespace"`
}

// OracleConfig Oracle 客户端配置
type OracleConfig struct {
	// 模型名称
	Model string `yaml:"model"`
	// 单次调用超时
	Timeout time.Duration `yaml:"timeout"`
	// 本地限流 RPS
	RateLimitRPS float64 `yaml:"rate_limit_rps"`
	// 限流突发量
	RateLimitBurst int `yaml:"rate_limit_burst"`
	// 最大 Token 数
	MaxTokens int `yaml:"max_tokens"`
	// 温度参数
	Temperature float32 `yaml:"temperature"`
}

// LogConfig 日志配置
type LogConfig struct {
	// 日志级别: debug/info/warn/error
	Level string `yaml:"level"`
	// 输出格式: json/console
	Format string `yaml:"format"`
}

// Indicator 单个复杂度级别的指标元数据。
// 分类器只使用 Keywords；其余字段与原始指标表对齐，供观测使用。
type Indicator struct {
	Keywords        []string `yaml:"keywords"`
	MaxEntities     int      `yaml:"max_entities"`
	MaxSteps        int      `yaml:"max_steps"`
	CreditThreshold int      `yaml:"credit_threshold"`
}

// WorkerConfig 单个 worker 的能力定义
type WorkerConfig struct {
	Name                string   `yaml:"name"`
	Tier                string   `yaml:"tier"`
	Specializations     []string `yaml:"specializations"`
	ComplexityThreshold string   `yaml:"complexity_threshold"`
	UnitCost            int      `yaml:"unit_cost"`
	UnitDuration        int      `yaml:"unit_duration"`
	Dependencies        []string `yaml:"dependencies"`
	Conflicts           []string `yaml:"conflicts"`
}

// Capability 将 WorkerConfig 转换为不可变能力描述
func (w WorkerConfig) Capability() *types.WorkerCapability {
	return &types.WorkerCapability{
		Name:                w.Name,
		Tier:                types.ParseTier(w.Tier),
		Specializations:     append([]string(nil), w.Specializations...),
		ComplexityThreshold: types.ParseComplexityLevel(w.ComplexityThreshold),
		UnitCost:            w.UnitCost,
		UnitDuration:        w.UnitDuration,
		Dependencies:        append([]string(nil), w.Dependencies...),
		Conflicts:           append([]string(nil), w.Conflicts...),
	}
}

// Capabilities 返回注册表中全部能力描述
func (c *Config) Capabilities() []*types.WorkerCapability {
	out := make([]*types.WorkerCapability, 0, len(c.Workers))
	for _, w := range c.Workers {
		out = append(out, w.Capability())
	}
	return out
}

// Multiplier 返回指定复杂度级别的预算放大系数，未配置时为 1.0
func (e EngineConfig) Multiplier(level types.ComplexityLevel) float64 {
	if m, ok := e.BudgetMultipliers[level.String()]; ok {
		return m
	}
	return 1.0
}

// KeywordsFor 返回指定复杂度级别的指标关键词
func (c *Config) KeywordsFor(level types.ComplexityLevel) []string {
	if ind, ok := c.Indicators[level.String()]; ok {
		return ind.Keywords
	}
	return nil
}

// SupportRuleFor 返回 Support 层 worker 的最低复杂度级别。
// 未配置规则的 worker 回退到其自身的 ComplexityThreshold。
func (c *Config) SupportRuleFor(w *types.WorkerCapability) types.ComplexityLevel {
	if name, ok := c.Support[w.Name]; ok {
		return types.ParseComplexityLevel(name)
	}
	return w.ComplexityThreshold
}
