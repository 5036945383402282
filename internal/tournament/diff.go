package tournament

import (
	"sort"
)

// Snapshot is the set of results known for a tournament at a point in time
type Snapshot struct {
	TournamentID string             `json:"tournament_id"`
	Results      map[string]*Result `json:"results"` // keyed by Match.ID
	UpdatedAt    string             `json:"updated_at"`
}

// NewSnapshot creates an empty snapshot
func NewSnapshot(tournamentID string) *Snapshot {
	return &Snapshot{
		TournamentID: tournamentID,
		Results:      make(map[string]*Result),
	}
}

// CreateSnapshot creates a snapshot from a list of results
func CreateSnapshot(tournamentID string, results []Result, updatedAt string) *Snapshot {
	snap := NewSnapshot(tournamentID)
	snap.UpdatedAt = updatedAt

	for i := range results {
		r := results[i]
		snap.Results[r.ID] = &r
	}

	return snap
}

// Diff returns the results in current that previous does not hold, ordered by
// category and then by time.
func Diff(previous *Snapshot, current []Result) []Result {
	if previous == nil {
		previous = NewSnapshot("")
	}

	fresh := make([]Result, 0)
	for _, r := range current {
		if _, exists := previous.Results[r.ID]; !exists {
			fresh = append(fresh, r)
		}
	}

	SortResults(fresh)
	return fresh
}

// SortResults orders results by category, then time. Results without a usable
// timestamp go after dated ones of their category.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Category != results[j].Category {
			return results[i].Category < results[j].Category
		}

		ti, tj := results[i].Time(), results[j].Time()
		if !ti.IsZero() && !tj.IsZero() {
			return ti.Before(tj)
		}
		return !ti.IsZero() && tj.IsZero()
	})
}
