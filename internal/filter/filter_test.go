package filter

import (
	"testing"
	"time"

	"github.com/pfrederiksen/tsw/internal/tournament"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func result(category, timestamp, winner, winnerCountry, loser, loserCountry string) tournament.Result {
	return tournament.Result{
		Match: tournament.Match{
			Timestamp:     timestamp,
			WinnerName:    winner,
			WinnerCountry: winnerCountry,
			LoserName:     loser,
			LoserCountry:  loserCountry,
		},
		Category: category,
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{
			name:   "empty filter",
			filter: NewFilter(),
			want:   true,
		},
		{
			name: "filter with date from",
			filter: &Filter{
				DateFrom: timePtr(time.Now()),
			},
			want: false,
		},
		{
			name: "filter with player",
			filter: &Filter{
				Players: []string{"Diaz"},
			},
			want: false,
		},
		{
			name: "filter with category",
			filter: &Filter{
				Categories: []string{"Singles"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("Filter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	mar1 := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	mar2 := time.Date(2021, 3, 2, 23, 59, 59, 0, time.UTC)

	dated := result("Women's Singles", "Tue 3/2/2021 10:00 AM", "Ana Diaz", "ESP", "Bea Ruiz", "ARG")
	undated := result("Men's Doubles", "", "Erik Berg", "NOR", "Finn Aho", "FIN")

	tests := []struct {
		name   string
		filter *Filter
		result tournament.Result
		want   bool
	}{
		{
			name:   "empty filter matches all",
			filter: NewFilter(),
			result: dated,
			want:   true,
		},
		{
			name:   "player matches winner",
			filter: &Filter{Players: []string{"diaz"}},
			result: dated,
			want:   true,
		},
		{
			name:   "player matches loser",
			filter: &Filter{Players: []string{"RUIZ"}},
			result: dated,
			want:   true,
		},
		{
			name:   "player does not match",
			filter: &Filter{Players: []string{"Lind"}},
			result: dated,
			want:   false,
		},
		{
			name:   "country matches loser",
			filter: &Filter{Countries: []string{"arg"}},
			result: dated,
			want:   true,
		},
		{
			name:   "country does not match",
			filter: &Filter{Countries: []string{"SWE"}},
			result: dated,
			want:   false,
		},
		{
			name:   "category substring",
			filter: &Filter{Categories: []string{"singles"}},
			result: dated,
			want:   true,
		},
		{
			name:   "category does not match",
			filter: &Filter{Categories: []string{"Doubles"}},
			result: dated,
			want:   false,
		},
		{
			name:   "within date range",
			filter: &Filter{DateFrom: &mar1, DateTo: &mar2},
			result: dated,
			want:   true,
		},
		{
			name:   "after date range",
			filter: &Filter{DateTo: &mar1},
			result: dated,
			want:   false,
		},
		{
			name:   "undated passes date range",
			filter: &Filter{DateFrom: &mar1, DateTo: &mar2},
			result: undated,
			want:   true,
		},
		{
			name:   "all criteria must match",
			filter: &Filter{Players: []string{"Diaz"}, Countries: []string{"NOR"}},
			result: dated,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.result); got != tt.want {
				t.Errorf("Filter.Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	results := []tournament.Result{
		result("Women's Singles", "", "Ana Diaz", "ESP", "Bea Ruiz", "ESP"),
		result("Women's Singles", "", "Dora Lind", "SWE", "Cleo Park", "KOR"),
		result("Men's Singles", "", "Erik Berg", "NOR", "Finn Aho", "FIN"),
	}

	if got := NewFilter().Apply(results); len(got) != 3 {
		t.Errorf("empty filter kept %d results, want 3", len(got))
	}

	f := &Filter{Countries: []string{"ESP", "SWE"}}
	got := f.Apply(results)
	if len(got) != 2 {
		t.Fatalf("Apply kept %d results, want 2", len(got))
	}
	if got[0].WinnerName != "Ana Diaz" || got[1].WinnerName != "Dora Lind" {
		t.Errorf("Apply changed order: %+v", got)
	}
}

func TestFilter_String(t *testing.T) {
	mar1 := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter *Filter
		want   string
	}{
		{
			name:   "empty",
			filter: NewFilter(),
			want:   "No active filters",
		},
		{
			name:   "date and players",
			filter: &Filter{DateFrom: &mar1, Players: []string{"Diaz", "Lind"}},
			want:   "From: Mar 1, 2021 | Players: Diaz, Lind",
		},
		{
			name:   "countries and categories",
			filter: &Filter{Countries: []string{"ESP"}, Categories: []string{"Singles"}},
			want:   "Countries: ESP | Categories: Singles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.String(); got != tt.want {
				t.Errorf("Filter.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
