package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pfrederiksen/tsw/internal/config"
	"github.com/pfrederiksen/tsw/internal/logger"
	"github.com/pfrederiksen/tsw/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitNewResults = 2
)

// errNewResults ends a --new-only run that found new results. It is not
// reported as an error; Execute turns it into ExitNewResults.
var errNewResults = errors.New("new results found")

var (
	flagLogLevel string
	flagFormat   string

	cfg config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsw",
		Short: "Scrape tournament results from tournamentsoftware.com",
		Long: `A CLI tool to read events, draws and match results of a
tournamentsoftware.com tournament. Dates missing from match lists can be
inferred from the draw bracket, and runs can be diffed against the last one.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (default from TSW_LOG_LEVEL or INFO)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", string(FormatTable), "Output format: table, json or ics")

	cmd.AddCommand(
		newEventsCmd(),
		newDrawsCmd(),
		newMatchesCmd(),
		newFixturesCmd(),
		newAllMatchesCmd(),
		newRunsCmd(),
	)

	return cmd
}

// setup loads the configuration and installs the process-wide logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	levelName := cfg.LogLevel
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	if _, err := parseFormat(flagFormat); err != nil {
		return err
	}

	logger.Debug("Configured", logger.Fields{
		"url":     cfg.URL,
		"workers": cfg.Workers,
		"timeout": cfg.Timeout.String(),
	})
	return nil
}

func parseFormat(name string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	switch format {
	case FormatTable, FormatJSON, FormatICS:
		return format, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'table', 'json' or 'ics')", name)
}

func newClient() (*scraper.Client, error) {
	client, err := scraper.New(cfg, scraper.WithLogger(logger.Default()))
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	return client, nil
}

// Execute runs the CLI
func Execute() {
	err := NewRootCmd().Execute()
	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.Is(err, errNewResults):
		os.Exit(ExitNewResults)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
