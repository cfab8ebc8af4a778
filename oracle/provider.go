package oracle

import (
	"context"
	"time"
)

// Role 消息角色
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message 单条对话消息
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest 同步文本补全请求
type ChatRequest struct {
	TraceID     string        `json:"trace_id"`
	Model       string        `json:"model"`
	Messages    []Message     `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
	Timeout     time.Duration `json:"timeout,omitempty"`
}

// ChatResponse 同步文本补全响应
type ChatResponse struct {
	Model   string `json:"model"`
	Content string `json:"content"`
}

// Provider 定义了 Oracle 后端的最小补全接口。
// 托管文本生成服务的具体适配由宿主进程提供；本包只依赖这个窄接口，
// 测试中以 mock 实现替换。
type Provider interface {
	// Completion 发起同步补全请求，返回完整响应
	Completion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Name 返回 Provider 的唯一标识
	Name() string
}
