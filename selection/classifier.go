package selection

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// Oracle 是分类器消费的外部复杂度评估接口。
// 实现见 oracle.Client；测试中以 mock 替换。调用失败时分类器替换
// 默认判断，因此分类本身永不失败。
type Oracle interface {
	Judge(ctx context.Context, task string, contextBag map[string]types.ContextValue, entities []string, contextFactors []string) (*types.OracleJudgment, error)
}

// Classifier 复杂度分类器。
// 综合关键词命中、实体数量、上下文因子数量与 Oracle 判断，
// 产出五级复杂度之一。
type Classifier struct {
	cfg    *config.Config
	oracle Oracle
	logger *zap.Logger

	onFallback func() // oracle 失败时的观测回调，可为 nil
}

// NewClassifier 创建分类器。oracle 可为 nil，此时总是使用默认判断。
func NewClassifier(cfg *config.Config, oracle Oracle, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Classifier{
		cfg:    cfg,
		oracle: oracle,
		logger: logger.With(zap.String("component", "classifier")),
	}
}

// Classify 对任务进行复杂度分类。
//
// 步骤：关键词匹配 → Oracle 判断（失败替换默认值）→ 实体数量升级 →
// 上下文因子升级 → Critical 关键词强制覆盖。
// 给定相同的 Oracle 响应，结果完全确定。
func (c *Classifier) Classify(ctx context.Context, task string, contextBag map[string]types.ContextValue, entities []types.Entity, contextFactors []string) (types.ComplexityLevel, *types.TaskAnalysis) {
	analysis := &types.TaskAnalysis{
		RawTask:        task,
		ContextFactors: contextFactors,
		Entities:       entities,
		KeywordHits:    make(map[types.ComplexityLevel][]string),
	}

	// 1. 各级别关键词匹配（子串匹配，与相关性过滤器共用同一配置表）
	taskLower := strings.ToLower(task)
	for _, level := range types.AllComplexityLevels() {
		var hits []string
		for _, kw := range c.cfg.KeywordsFor(level) {
			if strings.Contains(taskLower, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) > 0 {
			analysis.KeywordHits[level] = hits
		}
	}

	// 2. Oracle 判断，失败替换默认值
	analysis.Judgment = c.judge(ctx, task, contextBag, entities, contextFactors)

	// 3. 以 Oracle 推荐为起点
	level := analysis.Judgment.RecommendedLevel

	// 4. 实体数量升级：>8 直接提到 HighlyComplex，>5 将 Simple/Moderate 提到 Complex
	entityCount := len(entities)
	if entityCount > 5 && level <= types.ComplexityModerate {
		level = types.ComplexityComplex
	}
	if entityCount > 8 && level < types.ComplexityHighlyComplex {
		level = types.ComplexityHighlyComplex
	}

	// 5. 上下文因子升级：单步提升，作用在第 4 步的结果上
	if len(contextFactors) > 3 {
		switch level {
		case types.ComplexitySimple:
			level = types.ComplexityModerate
		case types.ComplexityModerate:
			level = types.ComplexityComplex
		}
	}

	// 6. Critical 关键词无条件覆盖
	if _, ok := analysis.KeywordHits[types.ComplexityCritical]; ok {
		level = types.ComplexityCritical
	}

	analysis.FinalLevel = level

	c.logger.Debug("task classified",
		zap.String("level", level.String()),
		zap.Int("entities", entityCount),
		zap.Int("context_factors", len(contextFactors)),
		zap.Bool("oracle_fallback", analysis.Judgment.Fallback),
	)

	return level, analysis
}

// judge 查询 Oracle，任何失败路径都替换默认判断
func (c *Classifier) judge(ctx context.Context, task string, contextBag map[string]types.ContextValue, entities []types.Entity, contextFactors []string) *types.OracleJudgment {
	if c.oracle == nil {
		return types.DefaultJudgment()
	}

	judgment, err := c.oracle.Judge(ctx, task, contextBag, types.EntityStrings(entities), contextFactors)
	if err != nil || judgment == nil {
		c.logger.Warn("oracle judgment failed, substituting default",
			zap.Error(err),
		)
		if c.onFallback != nil {
			c.onFallback()
		}
		return types.DefaultJudgment()
	}
	return judgment
}
