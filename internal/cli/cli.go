package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagQPS     float64
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brefstats",
		Short: "Scrape basketball-reference.com box scores and awards",
		Long: `A scraper for basketball-reference.com game box scores and
monthly/weekly awards. Extracted records are stored in Postgres;
re-running over the same pages is idempotent.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Float64Var(&flagQPS, "qps", 0, "Maximum queries per second (0 = unlimited)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newGamesCmd(), newAwardsCmd(), newServeCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
