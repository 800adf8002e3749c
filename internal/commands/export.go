package commands

import (
	"github.com/spf13/cobra"
)

func newExportCommand(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "export <account> <period>",
		Short: "Export an enriched monthly statement",
		Long:  "Fetches the account's transactions for the YYYYMM billing period and annotates each with tag names and sub-splits.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline(*verbose)
			if err != nil {
				return err
			}
			entries, err := p.Export(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(entries)
		},
	}
}
