package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/flashcheeks/banking-api/internal/buildinfo"
	"github.com/flashcheeks/banking-api/internal/config"
	"github.com/flashcheeks/banking-api/internal/pipeline"
	"github.com/flashcheeks/banking-api/internal/seed"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "banking-api",
		Short:   "Bank statement reconciliation and enrichment",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newMigrateCommand(&verbose))
	rootCmd.AddCommand(newImportCommand(&verbose))
	rootCmd.AddCommand(newExportCommand(&verbose))

	return rootCmd
}

// buildPipeline assembles a Pipeline from configuration. This is the
// adapter boundary: everything below it reports tagged errors,
// everything above translates them for the user.
func buildPipeline(verbose bool) (*pipeline.Pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	catalogue := seed.Default()
	if cfg.Seed.Catalogue != "" {
		if catalogue, err = seed.Load(cfg.Seed.Catalogue); err != nil {
			return nil, err
		}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	return &pipeline.Pipeline{
		DataRoot:  cfg.Data.Root,
		DBPath:    cfg.Database.Path,
		Catalogue: catalogue,
		Log:       log,
	}, nil
}

// printJSON writes a result payload to stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
