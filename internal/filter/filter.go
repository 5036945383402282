// Package filter narrows tournament results down by player, country, category
// and date.
//
// Example usage:
//
//	f := filter.NewFilter()
//	f.Players = []string{"Diaz"}
//	f.Countries = []string{"ESP"}
//
//	filtered := f.Apply(results)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/tsw/internal/tournament"
)

// Filter represents result filtering criteria
type Filter struct {
	// Date range filtering, inclusive
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Player name filtering (case-insensitive substring match on either player)
	Players []string `json:"players,omitempty"`

	// Country code filtering (either player)
	Countries []string `json:"countries,omitempty"`

	// Category filtering (case-insensitive substring match)
	Categories []string `json:"categories,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all results until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Players:    []string{},
		Countries:  []string{},
		Categories: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Players) == 0 &&
		len(f.Countries) == 0 &&
		len(f.Categories) == 0
}

// Matches checks if a result matches all active filter criteria.
// An empty filter matches all results.
//
// Matching logic:
//   - Date range: the match time must be within DateFrom and DateTo. Undated
//     results are not excluded by the date range.
//   - Players: winner or loser must contain one of the names (case-insensitive)
//   - Countries: winner or loser country must equal one of the codes
//   - Categories: the category must contain one of the names (case-insensitive)
func (f *Filter) Matches(r tournament.Result) bool {
	if f.IsEmpty() {
		return true
	}

	if at := r.Time(); !at.IsZero() {
		if f.DateFrom != nil && at.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && at.After(*f.DateTo) {
			return false
		}
	}

	if len(f.Players) > 0 && !containsAny(f.Players, r.WinnerName, r.LoserName) {
		return false
	}

	if len(f.Countries) > 0 {
		matched := false
		for _, country := range f.Countries {
			if strings.EqualFold(r.WinnerCountry, country) || strings.EqualFold(r.LoserCountry, country) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Categories) > 0 && !containsAny(f.Categories, r.Category) {
		return false
	}

	return true
}

// containsAny reports whether any of values contains any of needles,
// ignoring case.
func containsAny(needles []string, values ...string) bool {
	for _, v := range values {
		v = strings.ToLower(v)
		if v == "" {
			continue
		}
		for _, n := range needles {
			if strings.Contains(v, strings.ToLower(n)) {
				return true
			}
		}
	}
	return false
}

// Apply applies the filter to a list of results and returns only matching ones.
// If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(results []tournament.Result) []tournament.Result {
	if f.IsEmpty() {
		return results
	}

	var filtered []tournament.Result
	for _, r := range results {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "From: Mar 1, 2021 | To: Mar 7, 2021 | Players: Diaz | Countries: ESP"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}

	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}

	if len(f.Players) > 0 {
		parts = append(parts, fmt.Sprintf("Players: %s", strings.Join(f.Players, ", ")))
	}

	if len(f.Countries) > 0 {
		parts = append(parts, fmt.Sprintf("Countries: %s", strings.Join(f.Countries, ", ")))
	}

	if len(f.Categories) > 0 {
		parts = append(parts, fmt.Sprintf("Categories: %s", strings.Join(f.Categories, ", ")))
	}

	return strings.Join(parts, " | ")
}
