// =============================================================================
// 📦 AgentSelect 配置加载器
// =============================================================================
// 统一配置加载，支持 YAML 文件 + 环境变量覆盖
//
// 使用方法:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("agentselect.yaml").
//	    WithEnvPrefix("AGENTSELECT").
//	    Load()
//
// 配置优先级: 默认值 → YAML 文件 → 环境变量
// =============================================================================
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BaSui01/agentselect/types"
)

// Loader 配置加载器
type Loader struct {
	configPath string
	envPrefix  string
}

// NewLoader 创建配置加载器
func NewLoader() *Loader {
	return &Loader{envPrefix: "AGENTSELECT"}
}

// WithConfigPath 设置 YAML 配置文件路径
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvPrefix 设置环境变量前缀
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load 加载配置：默认值 → YAML 文件 → 环境变量
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if l.configPath != "" {
		data, err := os.ReadFile(l.configPath)
		if err != nil {
			return nil, types.NewError(types.ErrCodeInvalidConfig,
				fmt.Sprintf("reading config file %s", l.configPath)).WithCause(err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, types.NewError(types.ErrCodeInvalidConfig,
				fmt.Sprintf("parsing config file %s", l.configPath)).WithCause(err)
		}
	}

	l.applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv 应用环境变量覆盖
func (l *Loader) applyEnv(cfg *Config) {
	if v := l.env("ORACLE_MODEL"); v != "" {
		cfg.Oracle.Model = v
	}
	if v := l.env("ORACLE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Oracle.Timeout = d
		}
	}
	if v := l.env("ORACLE_RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Oracle.RateLimitRPS = f
		}
	}
	if v := l.env("ENGINE_OVERFLOW_ALLOWANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.OverflowAllowance = f
		}
	}
	if v := l.env("ENGINE_BATCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.BatchConcurrency = n
		}
	}
	if v := l.env("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (l *Loader) env(key string) string {
	return os.Getenv(l.envPrefix + "_" + key)
}

// Validate 校验配置的结构性约束。
// 注册表级别的校验（Core 层存在性、依赖环）由 selection.Registry 负责。
func (c *Config) Validate() error {
	if c.Engine.OverflowAllowance < 1.0 {
		return types.NewError(types.ErrCodeInvalidConfig,
			"engine.overflow_allowance must be >= 1.0")
	}
	if c.Engine.BatchConcurrency < 1 {
		return types.NewError(types.ErrCodeInvalidConfig,
			"engine.batch_concurrency must be >= 1")
	}
	if c.Oracle.Timeout <= 0 {
		return types.NewError(types.ErrCodeInvalidConfig,
			"oracle.timeout must be positive")
	}
	for name, m := range c.Engine.BudgetMultipliers {
		if m <= 0 {
			return types.NewError(types.ErrCodeInvalidConfig,
				fmt.Sprintf("engine.budget_multipliers[%s] must be positive", name))
		}
	}
	return nil
}
