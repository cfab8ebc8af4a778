package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/types"
)

func TestOpenAIProvider_Completion(t *testing.T) {
	var capturedAuth string
	var capturedBody openAIRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openAIResponse{
			Model: "gpt-4o-mini",
			Choices: []openAIChoice{
				{Message: openAIMessage{Role: "assistant", Content: `{"score": 5}`}},
			},
		})
	}))
	defer server.Close()

	p := NewOpenAIProvider(OpenAIConfig{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		DefaultModel: "gpt-4o-mini",
	}, zap.NewNop())

	resp, err := p.Completion(context.Background(), &ChatRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "you are an assessor"},
			{Role: RoleUser, Content: "assess this task"},
		},
		MaxTokens: 256,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", capturedAuth)
	assert.Equal(t, "gpt-4o-mini", capturedBody.Model)
	assert.Len(t, capturedBody.Messages, 2)
	assert.Equal(t, `{"score": 5}`, resp.Content)
}

func TestOpenAIProvider_RequestModelOverridesDefault(t *testing.T) {
	var capturedBody openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&capturedBody)
		json.NewEncoder(w).Encode(openAIResponse{
			Choices: []openAIChoice{{Message: openAIMessage{Content: "ok"}}},
		})
	}))
	defer server.Close()

	p := NewOpenAIProvider(OpenAIConfig{BaseURL: server.URL, DefaultModel: "default-model"}, zap.NewNop())

	_, err := p.Completion(context.Background(), &ChatRequest{
		Model:    "custom-model",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-model", capturedBody.Model)
}

func TestOpenAIProvider_ErrorStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"rate limited", http.StatusTooManyRequests, true},
		{"server error", http.StatusInternalServerError, true},
		{"bad request", http.StatusBadRequest, false},
		{"unauthorized", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream failure", tt.status)
			}))
			defer server.Close()

			p := NewOpenAIProvider(OpenAIConfig{BaseURL: server.URL}, zap.NewNop())
			_, err := p.Completion(context.Background(), &ChatRequest{
				Messages: []Message{{Role: RoleUser, Content: "hi"}},
			})
			require.Error(t, err)
			assert.Equal(t, types.ErrCodeOracleUnavailable, types.GetErrorCode(err))

			var terr *types.Error
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.retryable, terr.Retryable)
		})
	}
}

func TestOpenAIProvider_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openAIResponse{})
	}))
	defer server.Close()

	p := NewOpenAIProvider(OpenAIConfig{BaseURL: server.URL}, zap.NewNop())
	_, err := p.Completion(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.Error(t, err)
}

func TestOpenAIProvider_UnreachableServer(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{BaseURL: "http://127.0.0.1:1"}, zap.NewNop())
	_, err := p.Completion(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Equal(t, types.ErrCodeOracleUnavailable, types.GetErrorCode(err))
}
