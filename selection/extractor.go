package selection

import (
	"regexp"
	"sort"

	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/types"
)

// 上下文因子标识
const (
	factorLocationSpecific = "location_specific"
	factorTimeSensitive    = "time_sensitive"
	factorFinancialImpact  = "financial_impact"
	factorMultiParty       = "multi_party"
)

// 任务文本的四类实体模式
var entityPatterns = []struct {
	typ     string
	re      *regexp.Regexp
	capture bool
}{
	// 介词引导的地点短语（"in Miami", "near New Orleans"）
	{"location", regexp.MustCompile(`\b(?:in|at|near|from)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`), true},
	// 日历日期
	{"date", regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`), false},
	// 货币金额
	{"amount", regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`), false},
	// 两个大写开头单词的人名
	{"person", regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`), false},
}

// Extractor 实体与上下文提取器。
// 纯函数：相同输入总是产生相同的实体与因子，没有副作用。
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor 创建提取器
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Extractor{logger: logger.With(zap.String("component", "extractor"))}
}

// Extract 从任务文本与上下文包中提取实体与上下文因子。
// 上下文中每个非空字符串值都以其 key 作为类型发出一个实体；
// 无效类型的条目跳过并告警（MalformedContext 恢复路径，从不致命）。
func (e *Extractor) Extract(task string, contextBag map[string]types.ContextValue) ([]types.Entity, []string) {
	var entities []types.Entity

	// 上下文实体：稳定遍历由调用方保证无关紧要，因子与计数不受顺序影响，
	// 但为了可重复的日志与提示词，这里按 key 排序
	for _, key := range sortedKeys(contextBag) {
		value := contextBag[key]
		if value.Kind() == types.KindInvalid {
			e.logger.Warn("skipping malformed context entry",
				zap.String("key", key),
				zap.Error(types.NewError(types.ErrCodeMalformedContext, "context entry has no usable value")))
			continue
		}
		if value.Kind() == types.KindString && value.IsSet() {
			entities = append(entities, types.Entity{Type: key, Value: value.Text()})
		}
	}

	// 任务文本实体
	for _, p := range entityPatterns {
		if p.capture {
			for _, m := range p.re.FindAllStringSubmatch(task, -1) {
				entities = append(entities, types.Entity{Type: p.typ, Value: m[1]})
			}
			continue
		}
		for _, m := range p.re.FindAllString(task, -1) {
			entities = append(entities, types.Entity{Type: p.typ, Value: m})
		}
	}

	return entities, e.contextFactors(contextBag)
}

// contextFactors 从上下文 key 推导布尔因子
func (e *Extractor) contextFactors(contextBag map[string]types.ContextValue) []string {
	var factors []string

	if contextBag["location"].IsSet() {
		factors = append(factors, factorLocationSpecific)
	}
	if contextBag["date"].IsSet() || contextBag["time_sensitive"].IsSet() {
		factors = append(factors, factorTimeSensitive)
	}
	if contextBag["amount"].IsSet() || contextBag["value"].IsSet() {
		factors = append(factors, factorFinancialImpact)
	}
	if contextBag["multiple_parties"].IsSet() {
		factors = append(factors, factorMultiParty)
	}

	return factors
}

func sortedKeys(m map[string]types.ContextValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
