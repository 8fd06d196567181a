package main

import (
	"github.com/spf13/cobra"
)

var quizDifficulty string

var quizCmd = &cobra.Command{
	Use:   "quiz <skill>",
	Short: "Generate a five-question multiple-choice quiz for a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().StringVar(&quizDifficulty, "difficulty", "beginner", "Quiz difficulty (beginner, intermediate, advanced)")
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	gen, client, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, source, err := gen.BuildQuiz(ctx, args[0], quizDifficulty)
	if err != nil {
		return err
	}

	if flagVerbose {
		printer().PrintQuiz(result, string(source))
		return nil
	}
	return printJSON(result, source)
}
