// Package main provides the entry point for the SkillSwap content service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagProvider string
	flagModel    string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "skillswap",
	Short: "SkillSwap AI content service",
	Long:  "SkillSwap generates skill suggestions, learning roadmaps, quizzes and profile match scores for skill-exchange members, with deterministic fallbacks when the model is unreachable.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider (gemini or openai)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Override the provider's default model")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print formatted output instead of JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
