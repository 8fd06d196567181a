package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewOpenAIClient(&Config{
		Provider:    ProviderOpenAI,
		Model:       "test-model",
		BaseURL:     srv.URL,
		Temperature: 0.7,
		MaxTokens:   256,
	}, "test-key")
	require.NoError(t, err)
	return client
}

func TestOpenAIClient_GenerateJSON(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		_ = json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "```json\n{\"ok\": true}\n```"}},
			},
		})
	})

	got, err := client.GenerateJSON(context.Background(), "give me json")
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, got, "fences should be stripped")
}

func TestOpenAIClient_StatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{"unauthorized", http.StatusUnauthorized, KindAuth},
		{"bad request", http.StatusBadRequest, KindBadRequest},
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"unavailable", http.StatusServiceUnavailable, KindUnavailable},
		{"server error", http.StatusInternalServerError, KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error": {"message": "nope", "type": "test"}}`))
			})

			_, err := client.GenerateJSON(context.Background(), "prompt")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Kind)
			assert.Equal(t, "nope", apiErr.Message, "provider message should be surfaced")
		})
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(DefaultOpenAIConfig(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindAuth, apiErr.Kind)
}
