package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pfrederiksen/tsw/internal/draw"
	"github.com/pfrederiksen/tsw/internal/filter"
	"github.com/pfrederiksen/tsw/internal/logger"
	"github.com/pfrederiksen/tsw/internal/scraper"
	"github.com/pfrederiksen/tsw/internal/storage"
	"github.com/pfrederiksen/tsw/internal/store"
	"github.com/pfrederiksen/tsw/internal/tournament"
	"github.com/spf13/cobra"
)

var (
	flagDrawTypes      []string
	flagIncludeCountry bool
	flagInferDates     bool
	flagWorkers        int
	flagPlayers        []string
	flagCountries      []string
	flagCategories     []string
	flagDates          string
	flagSort           string
	flagNewOnly        bool
	flagDataDir        string
	flagDB             string
	flagWithDates      bool
	flagExact          bool
	flagRunResults     string
)

// latestRun selects the newest run for runs --results.
const latestRun = "latest"

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events TOURNAMENT_ID",
		Short: "List the events (categories) of a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := tabularFormat()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			events, err := client.Events(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetching events: %w", err)
			}
			return writeEvents(cmd.OutOrStdout(), events, format)
		},
	}
}

func newDrawsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draws TOURNAMENT_ID EVENT_ID",
		Short: "List the draws of an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := tabularFormat()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			draws, err := client.Draws(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("fetching draws: %w", err)
			}
			return writeDraws(cmd.OutOrStdout(), draws, format)
		},
	}
}

func newMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches TOURNAMENT_ID DRAW_ID",
		Short: "List the matches of a draw",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			matches, err := client.Matches(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("fetching matches: %w", err)
			}

			results := make([]tournament.Result, len(matches))
			for i, m := range matches {
				results[i] = tournament.Result{Match: m, DrawID: args[1]}
				if m.Timestamp != "" {
					results[i].DateSource = tournament.DateFromPage
				}
			}
			return writeResults(cmd.OutOrStdout(), resultsOutput(args[0], results), format)
		},
	}

	cmd.Flags().BoolVar(&flagIncludeCountry, "include-country", false, "Include player countries")
	return cmd
}

func newFixturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures TOURNAMENT_ID DRAW_ID",
		Short: "Reconstruct the bracket of a draw round by round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := tabularFormat()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			bracket, err := client.Bracket(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("fetching draw: %w", err)
			}

			if flagWithDates {
				dates, err := client.RoundDates(ctx, args[0])
				if err != nil {
					return fmt.Errorf("fetching round dates: %w", err)
				}
				bracket.Fixture = draw.AssignDates(bracket.Fixture, dates)
			}

			return writeBracket(cmd.OutOrStdout(), bracket, format)
		},
	}

	cmd.Flags().BoolVar(&flagWithDates, "with-dates", false, "Date rounds from the tournament's day list")
	return cmd
}

func newAllMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all-matches TOURNAMENT_ID",
		Short: "List every match of a tournament",
		Long: `List every match of every draw of the selected types.

With --new-only, results already reported by the previous run (kept as a
snapshot in --data-dir) are left out, and the exit code is 2 when new results
were found. With --db, every run is archived in a SQLite database.`,
		Args: cobra.ExactArgs(1),
		RunE: runAllMatches,
	}

	cmd.Flags().StringSliceVar(&flagDrawTypes, "draw-type", []string{scraper.DefaultDrawType}, "Draw types to include")
	cmd.Flags().BoolVar(&flagIncludeCountry, "include-country", false, "Include player countries")
	cmd.Flags().BoolVar(&flagInferDates, "infer-dates", false, "Infer missing match dates from the draw bracket")
	cmd.Flags().BoolVar(&flagExact, "exact-names", false, "Require exact player names when inferring dates")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Draws fetched in parallel (default from TSW_WORKERS or 4)")
	cmd.Flags().StringSliceVar(&flagPlayers, "player", nil, "Only matches with a player containing this name")
	cmd.Flags().StringSliceVar(&flagCountries, "country", nil, "Only matches with a player from this country code")
	cmd.Flags().StringSliceVar(&flagCategories, "category", nil, "Only matches in a category containing this name")
	cmd.Flags().StringVar(&flagDates, "dates", "", "Only matches in this date range, e.g. 2021-03-01..2021-03-07")
	cmd.Flags().StringVar(&flagSort, "sort", string(SortByPage), "Sort order: page, category, date or player")
	cmd.Flags().BoolVar(&flagNewOnly, "new-only", false, "Only results not seen in the previous run")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", storage.DefaultDataDir, "Data directory for snapshots")
	cmd.Flags().StringVar(&flagDB, "db", "", "SQLite database to archive the run in")

	return cmd
}

func runAllMatches(cmd *cobra.Command, args []string) error {
	tournamentID := args[0]
	ctx := cmd.Context()

	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}
	order, err := parseSortOrder(flagSort)
	if err != nil {
		return err
	}
	f, err := buildFilter()
	if err != nil {
		return err
	}

	workers := flagWorkers
	if workers <= 0 {
		workers = cfg.Workers
	}
	opts := scraper.AllOptions{
		DrawTypes:  flagDrawTypes,
		InferDates: flagInferDates,
		Workers:    workers,
	}
	if flagExact {
		opts.Matcher = draw.ExactPair
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	all, err := client.AllMatches(ctx, tournamentID, opts)
	if err != nil {
		return fmt.Errorf("fetching matches: %w", err)
	}

	if flagDB != "" {
		if err := archive(ctx, tournamentID, all); err != nil {
			return err
		}
	}

	results := all
	if flagNewOnly {
		results, err = newResults(tournamentID, all)
		if err != nil {
			return err
		}
	}

	results = f.Apply(results)
	sortResults(results, order)

	out := resultsOutput(tournamentID, results)
	out.Filter = f.String()
	if err := writeResults(cmd.OutOrStdout(), out, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("Fetch metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	if flagNewOnly && len(results) > 0 {
		return errNewResults
	}
	return nil
}

func buildFilter() (*filter.Filter, error) {
	f := filter.NewFilter()
	f.Players = append(f.Players, flagPlayers...)
	f.Countries = append(f.Countries, flagCountries...)
	f.Categories = append(f.Categories, flagCategories...)

	if flagDates != "" {
		from, to, err := filter.ParseDateRange(flagDates)
		if err != nil {
			return nil, fmt.Errorf("parsing --dates: %w", err)
		}
		f.DateFrom, f.DateTo = from, to
	}
	return f, nil
}

// newResults diffs all against the tournament's snapshot and replaces the
// snapshot with all.
func newResults(tournamentID string, all []tournament.Result) ([]tournament.Result, error) {
	snapshots, err := storage.New(flagDataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	previous, err := snapshots.LoadSnapshot(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	logger.Debug("Loaded previous snapshot", logger.Fields{
		"tournament": tournamentID,
		"results":    len(previous.Results),
	})

	fresh := tournament.Diff(previous, all)

	if err := snapshots.SaveResults(tournamentID, all); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	return fresh, nil
}

func archive(ctx context.Context, tournamentID string, results []tournament.Result) error {
	db, err := store.Open(flagDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	run, err := db.SaveRun(ctx, tournamentID, results)
	if err != nil {
		return fmt.Errorf("archiving run: %w", err)
	}

	logger.Info("Archived run", logger.Fields{
		"run":        run.ID.String(),
		"tournament": tournamentID,
		"results":    run.ResultCount,
	})
	return nil
}

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs TOURNAMENT_ID",
		Short: "List the archived runs of a tournament",
		Long: `List the archived runs of a tournament, newest first.

With --results, print the results archived by one run instead. Pass a run ID
from the listing, or "latest" for the newest run.`,
		Args: cobra.ExactArgs(1),
		RunE: runRuns,
	}

	cmd.Flags().StringVar(&flagDB, "db", "", "SQLite database holding the archive (required)")
	cmd.Flags().StringVar(&flagRunResults, "results", "", `Print the results of this run ID, or "latest"`)
	cmd.Flags().BoolVar(&flagIncludeCountry, "include-country", false, "Include player countries")
	cmd.MarkFlagRequired("db")
	return cmd
}

func runRuns(cmd *cobra.Command, args []string) error {
	tournamentID := args[0]
	ctx := cmd.Context()

	if flagRunResults == "" {
		format, err := tabularFormat()
		if err != nil {
			return err
		}
		db, err := store.Open(flagDB)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		runs, err := db.Runs(ctx, tournamentID)
		if err != nil {
			return err
		}
		return writeRuns(cmd.OutOrStdout(), runs, format)
	}

	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}
	db, err := store.Open(flagDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	results, err := archivedResults(ctx, db, tournamentID, flagRunResults)
	if err != nil {
		return err
	}

	if err := writeResults(cmd.OutOrStdout(), resultsOutput(tournamentID, results), format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// archivedResults loads the results of run, which must belong to tournamentID.
func archivedResults(ctx context.Context, db *store.Store, tournamentID, run string) ([]tournament.Result, error) {
	if run == latestRun {
		return db.Results(ctx, tournamentID)
	}

	id, err := uuid.Parse(run)
	if err != nil {
		return nil, fmt.Errorf("parsing run ID: %w", err)
	}

	runs, err := db.Runs(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	for _, r := range runs {
		if r.ID == id {
			return db.RunResults(ctx, id)
		}
	}
	return nil, fmt.Errorf("run %s not found for tournament %s", id, tournamentID)
}

// tabularFormat is parseFormat for listings that have no calendar form.
func tabularFormat() (OutputFormat, error) {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return "", err
	}
	if format == FormatICS {
		return "", fmt.Errorf("ics output is only available for matches")
	}
	return format, nil
}
