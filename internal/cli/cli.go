package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/hof-voting/internal/logger"
	"github.com/pfrederiksen/hof-voting/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess      = 0
	ExitError        = 1
	ExitNotAvailable = 2
)

var (
	flagYear    int
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hof-voting",
		Short: "Fetch Hall of Fame voting results for a year",
		Long: `A CLI tool to fetch BBWAA Hall of Fame voting results.
Pulls the public results page for one year and prints the voting table,
with a derived player id per entrant and the year's total ballot count.`,
		RunE: runFetch,
	}

	// Define flags
	cmd.Flags().IntVar(&flagYear, "year", 0, "Voting year to fetch (required)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or table")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("year")

	return cmd
}

// runFetch is the main command logic
func runFetch(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatTable {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'table')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	} else {
		logger.SetDefault(logger.New(logger.LevelWarn, os.Stderr))
	}

	s := scraper.New()

	logger.Debug("Fetching voting results", logger.Fields{"year": flagYear})
	start := time.Now()

	results, err := s.FetchVoting(flagYear)
	if err != nil {
		// A year with no results page content is a distinct outcome, not a
		// failure of the tool.
		var notAvailable *scraper.NotAvailableError
		if errors.As(err, &notAvailable) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(ExitNotAvailable)
		}
		return fmt.Errorf("fetching voting results: %w", err)
	}

	logger.Debug("Fetched voting results", logger.Fields{
		"year":     results.Year,
		"records":  len(results.Records),
		"ballots":  results.TotalBallots,
		"duration": time.Since(start).String(),
	})

	if err := WriteOutput(os.Stdout, results, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
