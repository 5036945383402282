package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/tsw/internal/tournament"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByPage     SortOrder = "page"
	SortByCategory SortOrder = "category"
	SortByDate     SortOrder = "date"
	SortByPlayer   SortOrder = "player"
)

func parseSortOrder(name string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(name)))
	switch order {
	case SortByPage, SortByCategory, SortByDate, SortByPlayer:
		return order, nil
	}
	return "", fmt.Errorf("invalid sort order: %s (must be 'page', 'category', 'date' or 'player')", name)
}

// sortResults sorts results based on the specified sort order. Page order
// leaves them as fetched.
func sortResults(results []tournament.Result, sortOrder SortOrder) {
	switch sortOrder {
	case SortByCategory:
		tournament.SortResults(results)
	case SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			return compareByDate(results[i], results[j])
		})
	case SortByPlayer:
		sort.SliceStable(results, func(i, j int) bool {
			wi, wj := strings.ToLower(results[i].WinnerName), strings.ToLower(results[j].WinnerName)
			if wi != wj {
				return wi < wj
			}
			// If winners are equal, sort by date
			return compareByDate(results[i], results[j])
		})
	}
}

// compareByDate compares two results by their match time
// Returns true if result i should come before result j
func compareByDate(i, j tournament.Result) bool {
	dateI := i.Time()
	dateJ := j.Time()

	// If both dates are valid, compare them
	if !dateI.IsZero() && !dateJ.IsZero() {
		return dateI.Before(dateJ)
	}

	// If only one date is valid, put the valid one first
	return !dateI.IsZero()
}
