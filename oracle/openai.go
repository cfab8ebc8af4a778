package oracle

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/types"
)

// OpenAIConfig OpenAI 兼容后端的连接配置
type OpenAIConfig struct {
	// APIKey 鉴权密钥
	APIKey string `yaml:"api_key"`
	// BaseURL 服务根地址，如 https://api.openai.com
	BaseURL string `yaml:"base_url"`
	// DefaultModel 请求未指定模型时使用的模型
	DefaultModel string `yaml:"default_model"`
	// Timeout HTTP 客户端超时，零值时默认 30s
	Timeout time.Duration `yaml:"timeout"`
	// EndpointPath 补全端点路径，默认 /v1/chat/completions
	EndpointPath string `yaml:"endpoint_path"`
}

// OpenAIProvider 基于 OpenAI 兼容 chat completions 协议的 Provider 实现。
// DeepSeek、Qwen、GLM 等兼容后端均可直接使用。
type OpenAIProvider struct {
	cfg    OpenAIConfig
	client *http.Client
	logger *zap.Logger
}

// NewOpenAIProvider 创建 OpenAI 兼容 Provider
func NewOpenAIProvider(cfg OpenAIConfig, logger *zap.Logger) *OpenAIProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if cfg.EndpointPath == "" {
		cfg.EndpointPath = "/v1/chat/completions"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIProvider{
		cfg: cfg,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
		logger: logger,
	}
}

// Name 返回 Provider 标识
func (p *OpenAIProvider) Name() string { return "openai-compat" }

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float32         `json:"temperature,omitempty"`
}

type openAIChoice struct {
	Message openAIMessage `json:"message"`
}

type openAIResponse struct {
	Model   string         `json:"model"`
	Choices []openAIChoice `json:"choices"`
}

// Completion 发起同步补全请求
func (p *OpenAIProvider) Completion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.cfg.DefaultModel
	}

	body := openAIRequest{
		Model:       model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, openAIMessage{Role: string(m.Role), Content: m.Content})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, types.NewError(types.ErrCodeInternalError, "marshal completion request").WithCause(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, types.NewError(types.ErrCodeInternalError, "build completion request").WithCause(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, types.NewError(types.ErrCodeOracleUnavailable, "completion request failed").
			WithCause(err).WithRetryable(true)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		e := types.NewError(types.ErrCodeOracleUnavailable,
			fmt.Sprintf("completion failed: status=%d msg=%s", resp.StatusCode, strings.TrimSpace(string(msg))))
		// 429/5xx 可重试，4xx 请求本身有问题
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			e = e.WithRetryable(true)
		}
		return nil, e
	}

	var oaResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&oaResp); err != nil {
		return nil, types.NewError(types.ErrCodeOracleUnavailable, "decode completion response").
			WithCause(err).WithRetryable(true)
	}
	if len(oaResp.Choices) == 0 {
		return nil, types.NewError(types.ErrCodeOracleUnavailable, "completion response has no choices")
	}

	return &ChatResponse{
		Model:   oaResp.Model,
		Content: oaResp.Choices[0].Message.Content,
	}, nil
}

func (p *OpenAIProvider) endpoint() string {
	return strings.TrimRight(p.cfg.BaseURL, "/") + p.cfg.EndpointPath
}
