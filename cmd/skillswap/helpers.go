package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mtruong/skillswap/internal/config"
	"github.com/mtruong/skillswap/internal/generate"
	"github.com/mtruong/skillswap/internal/llm"
	"github.com/mtruong/skillswap/internal/observability"
	"github.com/mtruong/skillswap/internal/retry"
)

// loadConfig layers flag values over environment values over config file values.
func loadConfig() (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	if flagConfig != "" {
		fileCfg, err := config.LoadFile(flagConfig)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if cfg.Provider == "" {
		cfg.Provider = "gemini"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// llmConfig builds the provider client configuration from process config.
func llmConfig(cfg *config.Config) *llm.Config {
	var lc *llm.Config
	if cfg.Provider == "openai" {
		lc = llm.DefaultOpenAIConfig()
	} else {
		lc = llm.DefaultGeminiConfig()
	}
	if cfg.Model != "" {
		lc = lc.WithModel(cfg.Model)
	}
	if cfg.Temperature > 0 {
		lc.Temperature = float32(cfg.Temperature)
	}
	return lc
}

// newGenerator creates the generation facade for CLI commands. The caller
// must Close the returned client.
func newGenerator(ctx context.Context, cfg *config.Config) (*generate.Generator, llm.Client, error) {
	apiKey := cfg.APIKey()
	if apiKey == "" {
		return nil, nil, fmt.Errorf("no API key configured for provider %s (set GEMINI_API_KEY or OPENAI_API_KEY)", cfg.Provider)
	}

	client, err := llm.NewClient(ctx, llmConfig(cfg), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	var opts []generate.Option
	if cfg.MaxAttempts > 0 {
		opts = append(opts, generate.WithPolicy(retry.NewPolicy(
			retry.WithMaxAttempts(cfg.MaxAttempts),
			retry.WithOnRetry(func(attempt int, delay time.Duration, err error) {
				log.Printf("generation attempt %d failed (%v), retrying in %s", attempt, err, delay)
			}),
		)))
	}

	return generate.New(client, opts...), client, nil
}

// printJSON writes the result as indented JSON with its provenance.
func printJSON(data any, source generate.Source) error {
	out := map[string]any{
		"source": source,
		"data":   data,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// printer returns the verbose-mode formatter.
func printer() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}
