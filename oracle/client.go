package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// Client 是复杂度 Oracle 的 Provider 客户端。
// 单次调用受超时与本地限流约束；任何失败都以错误返回，
// 由分类器负责替换默认判断，Client 本身从不吞掉错误。
type Client struct {
	provider Provider
	cfg      config.OracleConfig
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewClient 创建 Oracle 客户端
func NewClient(provider Provider, cfg config.OracleConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		provider: provider,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		logger:   logger.With(zap.String("component", "oracle_client")),
	}
}

// judgmentJSON Oracle 返回的 JSON 结构
type judgmentJSON struct {
	ComplexityScore       int      `json:"complexity_score"`
	Reasoning             string   `json:"reasoning"`
	RequiredExpertise     []string `json:"required_expertise"`
	ExternalDataNeeded    bool     `json:"external_data_needed"`
	EstimatedSteps        int      `json:"estimated_steps"`
	RiskLevel             string   `json:"risk_level"`
	RecommendedComplexity string   `json:"recommended_complexity"`
}

// Judge 请求一次复杂度评估。
// 失败路径：限流等待被取消、上游超时/错误、响应不含可解析 JSON。
func (c *Client) Judge(ctx context.Context, task string, contextBag map[string]types.ContextValue, entities []string, contextFactors []string) (*types.OracleJudgment, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.limiter.Wait(callCtx); err != nil {
		return nil, types.NewError(types.ErrCodeOracleTimeout, "rate limit wait aborted").
			WithCause(err).WithRetryable(true)
	}

	req := &ChatRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		Timeout:     c.cfg.Timeout,
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a task complexity assessor. Respond with a single JSON object and nothing else."},
			{Role: RoleUser, Content: buildPrompt(task, contextBag, entities, contextFactors)},
		},
	}

	resp, err := c.provider.Completion(callCtx, req)
	if err != nil {
		c.logger.Warn("oracle completion failed",
			zap.String("provider", c.provider.Name()),
			zap.Error(err),
		)
		return nil, types.NewError(types.ErrCodeOracleUnavailable, "oracle completion failed").
			WithCause(err).WithRetryable(true)
	}

	judgment, err := parseJudgment(resp.Content)
	if err != nil {
		c.logger.Warn("oracle returned unparseable judgment",
			zap.String("provider", c.provider.Name()),
			zap.Error(err),
		)
		return nil, err
	}

	return judgment, nil
}

// buildPrompt 构造评估提示词，结构与上游期望的 JSON 模式对齐
func buildPrompt(task string, contextBag map[string]types.ContextValue, entities []string, contextFactors []string) string {
	var b strings.Builder

	b.WriteString("Analyze the complexity of this task:\n\n")
	fmt.Fprintf(&b, "Task: %q\n", task)

	// Context 按 key 排序，保证相同输入产生相同提示词
	keys := make([]string, 0, len(contextBag))
	for k := range contextBag {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteString("Context:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s\n", k, contextBag[k].Text())
	}

	fmt.Fprintf(&b, "Entities found: %s\n", strings.Join(entities, ", "))
	fmt.Fprintf(&b, "Context factors: %s\n", strings.Join(contextFactors, ", "))

	b.WriteString(`
Assess complexity based on:
1. Number of steps required
2. Domain expertise needed
3. External data requirements
4. Risk level
5. Time sensitivity
6. Stakeholder involvement

Return assessment in JSON format:
{
  "complexity_score": 1-10,
  "reasoning": "explanation of complexity assessment",
  "required_expertise": ["domain1", "domain2"],
  "external_data_needed": true/false,
  "estimated_steps": 1-15,
  "risk_level": "low/medium/high/critical",
  "recommended_complexity": "simple/moderate/complex/highly_complex/critical"
}
`)

	return b.String()
}

// parseJudgment 解析 Oracle 响应。
// 依次尝试：直接解析、```json 代码块、无语言标签代码块。
func parseJudgment(content string) (*types.OracleJudgment, error) {
	if j := tryParseJudgmentJSON(content); j != nil {
		return j, nil
	}

	if idx := strings.Index(content, "```json"); idx != -1 {
		start := idx + len("```json")
		if end := strings.Index(content[start:], "```"); end != -1 {
			block := strings.TrimSpace(content[start : start+end])
			if j := tryParseJudgmentJSON(block); j != nil {
				return j, nil
			}
		}
	}

	if idx := strings.Index(content, "```"); idx != -1 {
		start := idx + len("```")
		if nlIdx := strings.Index(content[start:], "\n"); nlIdx != -1 {
			start = start + nlIdx + 1
		}
		if end := strings.Index(content[start:], "```"); end != -1 {
			block := strings.TrimSpace(content[start : start+end])
			if j := tryParseJudgmentJSON(block); j != nil {
				return j, nil
			}
		}
	}

	return nil, types.NewError(types.ErrCodeOracleUnavailable, "oracle response contained no parseable judgment")
}

// tryParseJudgmentJSON 尝试解析一段 JSON，失败返回 nil
func tryParseJudgmentJSON(raw string) *types.OracleJudgment {
	var parsed judgmentJSON
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}
	if parsed.ComplexityScore == 0 && parsed.RecommendedComplexity == "" {
		return nil
	}

	return &types.OracleJudgment{
		Score:              parsed.ComplexityScore,
		RecommendedLevel:   types.ParseComplexityLevel(parsed.RecommendedComplexity),
		Reasoning:          parsed.Reasoning,
		RequiredExpertise:  parsed.RequiredExpertise,
		ExternalDataNeeded: parsed.ExternalDataNeeded,
		EstimatedSteps:     parsed.EstimatedSteps,
		RiskLevel:          parsed.RiskLevel,
	}
}
