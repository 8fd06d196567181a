package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenAIClient implements Client against any OpenAI-compatible
// chat-completions endpoint using bearer-token auth.
type OpenAIClient struct {
	httpClient *http.Client
	config     *Config
	apiKey     string
}

// NewOpenAIClient creates a client for an OpenAI-compatible endpoint
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, &APIError{Kind: KindAuth, Message: "API key is required"}
	}
	if config.BaseURL == "" {
		config = DefaultOpenAIConfig().WithModel(config.Model)
	}

	return &OpenAIClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		config:     config,
		apiKey:     apiKey,
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateJSON posts the prompt as a single user message and returns the
// first choice's content with any code fences stripped.
func (c *OpenAIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model:       c.config.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Kind: KindTransient, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Kind: KindTransient, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		kind := ClassifyStatus(resp.StatusCode)
		if kind == KindUnknown {
			kind = KindTransient
		}
		msg := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		var parsed chatResponse
		if json.Unmarshal(respBody, &parsed) == nil && parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", &APIError{Kind: kind, StatusCode: resp.StatusCode, Message: msg}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &APIError{Kind: KindTransient, Message: "failed to decode response", Cause: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &APIError{Kind: KindTransient, Message: "no choices in response"}
	}

	return CleanJSONBlock(parsed.Choices[0].Message.Content), nil
}

// Model returns the configured model name
func (c *OpenAIClient) Model() string {
	return c.config.Model
}

// Close is a no-op for the HTTP client
func (c *OpenAIClient) Close() error {
	return nil
}
