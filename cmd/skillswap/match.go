package main

import (
	"github.com/spf13/cobra"

	"github.com/mtruong/skillswap/internal/generate"
)

var (
	matchTeachA []string
	matchLearnA []string
	matchTeachB []string
	matchLearnB []string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score the compatibility of two member profiles",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringSliceVar(&matchTeachA, "teach-a", nil, "Skills the first member teaches")
	matchCmd.Flags().StringSliceVar(&matchLearnA, "learn-a", nil, "Skills the first member wants to learn")
	matchCmd.Flags().StringSliceVar(&matchTeachB, "teach-b", nil, "Skills the second member teaches")
	matchCmd.Flags().StringSliceVar(&matchLearnB, "learn-b", nil, "Skills the second member wants to learn")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
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

	result, source, err := gen.MatchProfiles(ctx,
		generate.Profile{Teaches: matchTeachA, Learns: matchLearnA},
		generate.Profile{Teaches: matchTeachB, Learns: matchLearnB},
	)
	if err != nil {
		return err
	}

	if flagVerbose {
		printer().PrintMatch(result, string(source))
		return nil
	}
	return printJSON(result, source)
}
