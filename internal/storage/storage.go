package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pfrederiksen/tsw/internal/tournament"
)

// DefaultDataDir is the snapshot directory used when none is configured.
const DefaultDataDir = "~/.local/share/tsw"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Storage handles persistence of result snapshots
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if dataDir == "~" || strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, strings.TrimPrefix(dataDir[1:], "/"))
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// snapshotPath returns the path to the snapshot file of a tournament.
// Tournament IDs are GUIDs; anything else is reduced to a safe file name.
func (s *Storage) snapshotPath(tournamentID string) string {
	name := unsafeChars.ReplaceAllString(strings.ToLower(tournamentID), "_")
	return filepath.Join(s.dataDir, fmt.Sprintf("results_%s.json", name))
}

// LoadSnapshot loads a tournament's snapshot from disk. A tournament without
// one yet gets an empty snapshot.
func (s *Storage) LoadSnapshot(tournamentID string) (*tournament.Snapshot, error) {
	path := s.snapshotPath(tournamentID)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No previous snapshot, return empty one
			return tournament.NewSnapshot(tournamentID), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot tournament.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	// Ensure Results map is initialized
	if snapshot.Results == nil {
		snapshot.Results = make(map[string]*tournament.Result)
	}
	if snapshot.TournamentID == "" {
		snapshot.TournamentID = tournamentID
	}

	return &snapshot, nil
}

// SaveSnapshot saves a snapshot to disk under its tournament ID
func (s *Storage) SaveSnapshot(snapshot *tournament.Snapshot) error {
	path := s.snapshotPath(snapshot.TournamentID)

	// Set updated timestamp
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	// Write through a temp file; a crash leaves the old snapshot in place
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// SaveResults creates and saves a snapshot from a list of results
func (s *Storage) SaveResults(tournamentID string, results []tournament.Result) error {
	snapshot := tournament.CreateSnapshot(tournamentID, results, time.Now().UTC().Format(time.RFC3339))
	return s.SaveSnapshot(snapshot)
}
