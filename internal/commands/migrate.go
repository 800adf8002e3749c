package commands

import (
	"github.com/spf13/cobra"
)

func newMigrateCommand(verbose *bool) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed it from the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline(*verbose)
			if err != nil {
				return err
			}
			result, err := p.Migrate(cmd.Context(), force)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "drop existing tables before migrating (destructive)")

	return cmd
}
