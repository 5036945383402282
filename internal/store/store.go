// Package store archives scrape runs in SQLite.
//
// Every AllMatches run of a tournament is kept as a run row plus its results
// in page order, so earlier runs can be compared or replayed. The schema is
// embedded and migrated on Open.
package store

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pfrederiksen/tsw/internal/score"
	"github.com/pfrederiksen/tsw/internal/tournament"
)

//go:embed migrations/*.sql
var migrations embed.FS

// insertBatch keeps multi-row inserts under SQLite's bound variable limit.
const insertBatch = 500

// Run is one archived scrape of a tournament.
type Run struct {
	ID           uuid.UUID `db:"id"`
	TournamentID string    `db:"tournament_id"`
	ResultCount  int       `db:"result_count"`
	CreatedAt    time.Time `db:"created_at"`
}

type resultRow struct {
	RunID         uuid.UUID `db:"run_id"`
	Position      int       `db:"position"`
	MatchID       string    `db:"match_id"`
	EventID       string    `db:"event_id"`
	DrawID        string    `db:"draw_id"`
	Category      string    `db:"category"`
	Timestamp     string    `db:"timestamp"`
	DateSource    string    `db:"date_source"`
	WinnerName    string    `db:"winner_name"`
	WinnerCountry string    `db:"winner_country"`
	LoserName     string    `db:"loser_name"`
	LoserCountry  string    `db:"loser_country"`
	Score         string    `db:"score"`
}

// Store is a SQLite results archive.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn and applies pending migrations.
// A dsn of "file::memory:" gives a private in-memory archive.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", dsn, err)
	}
	if strings.Contains(dsn, ":memory:") {
		// every pooled connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func migrateUp(db *sqlx.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("creating migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun archives results as a new run of tournamentID in one transaction.
func (s *Store) SaveRun(ctx context.Context, tournamentID string, results []tournament.Result) (Run, error) {
	run := Run{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		ResultCount:  len(results),
		CreatedAt:    time.Now().UTC(),
	}

	rows := make([]resultRow, len(results))
	for i, r := range results {
		sc, err := json.Marshal(r.Score)
		if err != nil {
			return Run{}, fmt.Errorf("encoding score of %s: %w", r.ID, err)
		}
		rows[i] = resultRow{
			RunID:         run.ID,
			Position:      i,
			MatchID:       r.ID,
			EventID:       r.EventID,
			DrawID:        r.DrawID,
			Category:      r.Category,
			Timestamp:     r.Timestamp,
			DateSource:    r.DateSource,
			WinnerName:    r.WinnerName,
			WinnerCountry: r.WinnerCountry,
			LoserName:     r.LoserName,
			LoserCountry:  r.LoserCountry,
			Score:         string(sc),
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `INSERT INTO runs (id, tournament_id, result_count, created_at)
		VALUES (:id, :tournament_id, :result_count, :created_at)`, run)
	if err != nil {
		return Run{}, fmt.Errorf("inserting run: %w", err)
	}

	for start := 0; start < len(rows); start += insertBatch {
		end := min(start+insertBatch, len(rows))
		_, err = tx.NamedExecContext(ctx, `INSERT INTO results (run_id, position, match_id, event_id, draw_id, category, timestamp, date_source, winner_name, winner_country, loser_name, loser_country, score)
			VALUES (:run_id, :position, :match_id, :event_id, :draw_id, :category, :timestamp, :date_source, :winner_name, :winner_country, :loser_name, :loser_country, :score)`, rows[start:end])
		if err != nil {
			return Run{}, fmt.Errorf("inserting results: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("committing run: %w", err)
	}
	return run, nil
}

// Runs lists the archived runs of a tournament, newest first.
func (s *Store) Runs(ctx context.Context, tournamentID string) ([]Run, error) {
	var runs []Run
	err := s.db.SelectContext(ctx, &runs,
		"SELECT id, tournament_id, result_count, created_at FROM runs WHERE tournament_id = ? ORDER BY created_at DESC, rowid DESC",
		tournamentID)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// Results returns the results of the latest run of a tournament in page
// order. A tournament never archived has none.
func (s *Store) Results(ctx context.Context, tournamentID string) ([]tournament.Result, error) {
	runs, err := s.Runs(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return s.RunResults(ctx, runs[0].ID)
}

// RunResults returns the results of one run in page order.
func (s *Store) RunResults(ctx context.Context, runID uuid.UUID) ([]tournament.Result, error) {
	var rows []resultRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT * FROM results WHERE run_id = ? ORDER BY position ASC", runID)
	if err != nil {
		return nil, fmt.Errorf("loading results: %w", err)
	}

	results := make([]tournament.Result, len(rows))
	for i, row := range rows {
		var sc score.Score
		if err := json.Unmarshal([]byte(row.Score), &sc); err != nil {
			return nil, fmt.Errorf("decoding score of %s: %w", row.MatchID, err)
		}
		results[i] = tournament.Result{
			Match: tournament.Match{
				ID:            row.MatchID,
				Timestamp:     row.Timestamp,
				WinnerName:    row.WinnerName,
				WinnerCountry: row.WinnerCountry,
				LoserName:     row.LoserName,
				LoserCountry:  row.LoserCountry,
				Score:         sc,
			},
			Category:   row.Category,
			EventID:    row.EventID,
			DrawID:     row.DrawID,
			DateSource: row.DateSource,
		}
	}
	return results, nil
}
