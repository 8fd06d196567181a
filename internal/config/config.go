// Package config provides configuration loading and validation for the
// service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds process configuration. Values can come from a JSON file, from
// environment variables, or from CLI flags; missing values use defaults.
type Config struct {
	// LLM provider
	Provider     string  `json:"provider,omitempty"`       // "gemini" or "openai"
	GeminiAPIKey string  `json:"gemini_api_key,omitempty"` // Gemini API key
	OpenAIAPIKey string  `json:"openai_api_key,omitempty"` // OpenAI API key
	Model        string  `json:"model,omitempty"`          // Override the provider's default model
	Temperature  float64 `json:"temperature,omitempty"`    // Sampling temperature (0.0-2.0)

	// Retry behavior
	MaxAttempts int `json:"max_attempts,omitempty"` // Attempts per generation before falling back

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// FromEnv builds a Config from environment variables. Unset variables leave
// the zero value so the result can be merged with file values and defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Provider:     os.Getenv("LLM_PROVIDER"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		Model:        os.Getenv("LLM_MODEL"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if attemptsStr := os.Getenv("LLM_MAX_ATTEMPTS"); attemptsStr != "" {
		attempts, err := strconv.Atoi(attemptsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_MAX_ATTEMPTS: %v", err)
		}
		cfg.MaxAttempts = attempts
	}

	return cfg, nil
}

// LoadFile loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. It does not check
// for required fields since those depend on which command is running.
func (c *Config) Validate() error {
	switch c.Provider {
	case "", "gemini", "openai":
	default:
		return fmt.Errorf("config error: unknown provider %q (must be gemini or openai)", c.Provider)
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0.0 and 2.0")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config error: 'max_attempts' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	return nil
}

// APIKey returns the API key for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer file values under environment and flag
// values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int and float fields: use default if zero. Like the bool fields below,
	// an explicit zero (MaxAttempts: 0, Temperature: 0) is indistinguishable
	// from unset and gets replaced by the default.
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}
	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}

	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
