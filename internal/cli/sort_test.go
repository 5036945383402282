package cli

import (
	"testing"

	"github.com/pfrederiksen/tsw/internal/tournament"
)

func sortFixture() []tournament.Result {
	mk := func(category, timestamp, winner string) tournament.Result {
		return tournament.Result{
			Match:    tournament.Match{Timestamp: timestamp, WinnerName: winner},
			Category: category,
		}
	}
	return []tournament.Result{
		mk("Women's Singles", "2021-03-02", "dora"),
		mk("Men's Singles", "", "Erik"),
		mk("Women's Singles", "Mon 3/1/2021 10:00 AM", "Ana"),
		mk("Men's Singles", "Mon 3/1/2021 09:00 AM", "Ana"),
	}
}

func winners(results []tournament.Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.WinnerName + "@" + r.Category
	}
	return names
}

func TestSortResults(t *testing.T) {
	tests := []struct {
		order SortOrder
		want  []string
	}{
		{SortByPage, []string{"dora@Women's Singles", "Erik@Men's Singles", "Ana@Women's Singles", "Ana@Men's Singles"}},
		{SortByCategory, []string{"Ana@Men's Singles", "Erik@Men's Singles", "Ana@Women's Singles", "dora@Women's Singles"}},
		{SortByDate, []string{"Ana@Men's Singles", "Ana@Women's Singles", "dora@Women's Singles", "Erik@Men's Singles"}},
		{SortByPlayer, []string{"Ana@Men's Singles", "Ana@Women's Singles", "dora@Women's Singles", "Erik@Men's Singles"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			results := sortFixture()
			sortResults(results, tt.order)

			got := winners(results)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sortResults(%s) = %v, want %v", tt.order, got, tt.want)
					break
				}
			}
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SortOrder
		wantErr bool
	}{
		{"page", SortByPage, false},
		{" Date ", SortByDate, false},
		{"PLAYER", SortByPlayer, false},
		{"category", SortByCategory, false},
		{"title", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSortOrder(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSortOrder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSortOrder(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
