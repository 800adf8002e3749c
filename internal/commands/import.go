package commands

import (
	"github.com/spf13/cobra"
)

func newImportCommand(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "import <account> <period>",
		Short: "Import one monthly statement file into the store",
		Long:  "Parses <data-root>/<account>/<period>.csv and reconciles it into the store. Period is a YYYYMM billing-period token.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline(*verbose)
			if err != nil {
				return err
			}
			saved, err := p.Import(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(saved)
		},
	}
}
