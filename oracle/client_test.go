package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// mockProvider implements Provider with a function callback for testing.
type mockProvider struct {
	name         string
	completionFn func(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

func (m *mockProvider) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockProvider) Completion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if m.completionFn != nil {
		return m.completionFn(ctx, req)
	}
	return &ChatResponse{Content: "{}"}, nil
}

func testOracleConfig() config.OracleConfig {
	cfg := config.DefaultOracleConfig()
	cfg.Timeout = time.Second
	cfg.RateLimitRPS = 1000
	cfg.RateLimitBurst = 1000
	return cfg
}

const validJudgment = `{
	"complexity_score": 7,
	"reasoning": "multi-step investigation",
	"required_expertise": ["fraud_detection"],
	"external_data_needed": true,
	"estimated_steps": 6,
	"risk_level": "high",
	"recommended_complexity": "complex"
}`

func TestClient_Judge(t *testing.T) {
	provider := &mockProvider{
		completionFn: func(_ context.Context, req *ChatRequest) (*ChatResponse, error) {
			assert.Len(t, req.Messages, 2)
			assert.Contains(t, req.Messages[1].Content, "suspicious claim")
			return &ChatResponse{Content: validJudgment}, nil
		},
	}

	client := NewClient(provider, testOracleConfig(), zap.NewNop())
	judgment, err := client.Judge(context.Background(), "Investigate suspicious claim", nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 7, judgment.Score)
	assert.Equal(t, types.ComplexityComplex, judgment.RecommendedLevel)
	assert.True(t, judgment.ExternalDataNeeded)
	assert.Equal(t, "high", judgment.RiskLevel)
	assert.False(t, judgment.Fallback)
}

func TestClient_Judge_CodeBlock(t *testing.T) {
	provider := &mockProvider{
		completionFn: func(_ context.Context, _ *ChatRequest) (*ChatResponse, error) {
			return &ChatResponse{
				Content: "Here is the assessment:\n```json\n" + validJudgment + "\n```\nDone.",
			}, nil
		},
	}

	client := NewClient(provider, testOracleConfig(), zap.NewNop())
	judgment, err := client.Judge(context.Background(), "task", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, types.ComplexityComplex, judgment.RecommendedLevel)
}

func TestClient_Judge_UntaggedCodeBlock(t *testing.T) {
	provider := &mockProvider{
		completionFn: func(_ context.Context, _ *ChatRequest) (*ChatResponse, error) {
			return &ChatResponse{Content: "```\n" + validJudgment + "\n```"}, nil
		},
	}

	client := NewClient(provider, testOracleConfig(), zap.NewNop())
	judgment, err := client.Judge(context.Background(), "task", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, judgment.Score)
}

func TestClient_Judge_ProviderError(t *testing.T) {
	provider := &mockProvider{
		completionFn: func(_ context.Context, _ *ChatRequest) (*ChatResponse, error) {
			return nil, errors.New("upstream unavailable")
		},
	}

	client := NewClient(provider, testOracleConfig(), zap.NewNop())
	_, err := client.Judge(context.Background(), "task", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, types.ErrCodeOracleUnavailable, types.GetErrorCode(err))
}

func TestClient_Judge_UnparseableResponse(t *testing.T) {
	provider := &mockProvider{
		completionFn: func(_ context.Context, _ *ChatRequest) (*ChatResponse, error) {
			return &ChatResponse{Content: "I cannot assess this task."}, nil
		},
	}

	client := NewClient(provider, testOracleConfig(), zap.NewNop())
	_, err := client.Judge(context.Background(), "task", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, types.ErrCodeOracleUnavailable, types.GetErrorCode(err))
}

func TestClient_Judge_Timeout(t *testing.T) {
	provider := &mockProvider{
		completionFn: func(ctx context.Context, _ *ChatRequest) (*ChatResponse, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return &ChatResponse{Content: validJudgment}, nil
			}
		},
	}

	cfg := testOracleConfig()
	cfg.Timeout = 50 * time.Millisecond
	client := NewClient(provider, cfg, zap.NewNop())

	_, err := client.Judge(context.Background(), "task", nil, nil, nil)
	require.Error(t, err)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	bag := map[string]types.ContextValue{
		"location": types.StringValue("Miami"),
		"amount":   types.NumberValue(15000),
	}

	first := buildPrompt("task", bag, []string{"location:Miami"}, []string{"location_specific"})
	second := buildPrompt("task", bag, []string{"location:Miami"}, []string{"location_specific"})
	assert.Equal(t, first, second)
	assert.Contains(t, first, "location: Miami")
	assert.Contains(t, first, "amount: 15000")
	assert.Contains(t, first, "recommended_complexity")
}
