package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// Narrative 是某个 worker 针对任务的简短行动与结果描述。
// 叙事内容位于选择流水线下游，对选择正确性没有影响。
type Narrative struct {
	Action string `json:"action"`
	Result string `json:"result"`
}

// NarrativeGenerator 为选中的 worker 生成自然语言叙事
type NarrativeGenerator interface {
	Narrate(ctx context.Context, worker *types.WorkerCapability, task string) (*Narrative, error)
}

// ProviderNarrator 基于 Provider 的叙事生成器，失败时回退到静态模板
type ProviderNarrator struct {
	provider Provider
	cfg      config.OracleConfig
	logger   *zap.Logger
}

// NewProviderNarrator 创建叙事生成器
func NewProviderNarrator(provider Provider, cfg config.OracleConfig, logger *zap.Logger) *ProviderNarrator {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &ProviderNarrator{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With(zap.String("component", "narrator")),
	}
}

// Narrate 生成 worker 的行动/结果描述，任何失败都回退为静态叙事
func (n *ProviderNarrator) Narrate(ctx context.Context, worker *types.WorkerCapability, task string) (*Narrative, error) {
	callCtx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Worker %q (tier %s, specializations: %s) participates in this task:

Task: %q

Return JSON: {"action": "one sentence describing what the worker does", "result": "one sentence describing its outcome"}`,
		worker.Name, worker.Tier, strings.Join(worker.Specializations, ", "), task)

	resp, err := n.provider.Completion(callCtx, &ChatRequest{
		Model:       n.cfg.Model,
		MaxTokens:   n.cfg.MaxTokens,
		Temperature: n.cfg.Temperature,
		Messages: []Message{
			{Role: RoleUser, Content: prompt},
		},
	})
	if err != nil {
		n.logger.Warn("narrative generation failed, using static fallback",
			zap.String("worker", worker.Name),
			zap.Error(err),
		)
		return StaticNarrative(worker), nil
	}

	var parsed Narrative
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Content)), &parsed); err != nil || parsed.Action == "" {
		return StaticNarrative(worker), nil
	}

	return &parsed, nil
}

// StaticNarrative 返回按 tier 的静态叙事模板
func StaticNarrative(worker *types.WorkerCapability) *Narrative {
	switch worker.Tier {
	case types.TierCore:
		return &Narrative{
			Action: fmt.Sprintf("%s handles the request and routes it appropriately", worker.Name),
			Result: fmt.Sprintf("%s completed baseline processing", worker.Name),
		}
	case types.TierSpecialized:
		return &Narrative{
			Action: fmt.Sprintf("%s applies domain expertise to the task", worker.Name),
			Result: fmt.Sprintf("%s produced a domain assessment", worker.Name),
		}
	case types.TierAdvanced:
		return &Narrative{
			Action: fmt.Sprintf("%s performs in-depth analysis", worker.Name),
			Result: fmt.Sprintf("%s delivered analytical findings", worker.Name),
		}
	default:
		return &Narrative{
			Action: fmt.Sprintf("%s supports and coordinates the other workers", worker.Name),
			Result: fmt.Sprintf("%s completed its supporting role", worker.Name),
		}
	}
}
