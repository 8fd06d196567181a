// Package llm provides centralized LLM configuration and client abstractions.
// Two providers are supported: Google Gemini through its SDK (with native
// JSON-mode output) and any OpenAI-compatible HTTP chat endpoint.
package llm

// Provider represents an LLM provider
type Provider string

const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is any OpenAI-compatible chat-completions endpoint
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	// BaseURL overrides the OpenAI-compatible endpoint (ignored for Gemini).
	BaseURL string
	// Temperature for generation; structured output wants it low.
	Temperature float32
	// MaxTokens caps the completion length for the HTTP provider.
	MaxTokens int
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// DefaultOpenAIConfig returns the default OpenAI-compatible configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o-mini",
		BaseURL:     "https://api.openai.com/v1",
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// WithModel returns a copy of the config with a specific model
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}
