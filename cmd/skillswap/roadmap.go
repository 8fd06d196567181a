package main

import (
	"github.com/spf13/cobra"

	"github.com/mtruong/skillswap/internal/resources"
)

var (
	roadmapLevel  string
	roadmapEnrich bool
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <skill>",
	Short: "Build a step-by-step learning roadmap for a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoadmap,
}

func init() {
	roadmapCmd.Flags().StringVar(&roadmapLevel, "level", "beginner", "Starting level (beginner, intermediate, advanced)")
	roadmapCmd.Flags().BoolVar(&roadmapEnrich, "enrich", false, "Fetch resource pages to fill in missing titles")
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, args []string) error {
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

	result, source, err := gen.BuildRoadmap(ctx, args[0], roadmapLevel)
	if err != nil {
		return err
	}

	if roadmapEnrich {
		resources.NewEnricher().EnrichRoadmap(ctx, result)
	}

	if flagVerbose {
		printer().PrintRoadmap(result, string(source))
		return nil
	}
	return printJSON(result, source)
}
