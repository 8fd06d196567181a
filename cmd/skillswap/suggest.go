package main

import (
	"github.com/spf13/cobra"
)

var suggestTeaches []string

var suggestCmd = &cobra.Command{
	Use:   "suggest [interest]",
	Short: "Suggest five skills for a member to learn next",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringSliceVar(&suggestTeaches, "teaches", nil, "Skills the member already teaches")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
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

	interest := ""
	if len(args) > 0 {
		interest = args[0]
	}

	result, source, err := gen.SuggestSkills(ctx, suggestTeaches, interest)
	if err != nil {
		return err
	}

	if flagVerbose {
		printer().PrintSuggestions(result, string(source))
		return nil
	}
	return printJSON(result, source)
}
