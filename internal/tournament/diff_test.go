package tournament

import (
	"testing"

	"github.com/pfrederiksen/tsw/internal/score"
)

func result(category, timestamp, winner, loser string) Result {
	return Result{
		Match:    NewMatch("1", timestamp, winner, "", loser, "", score.Score{Sets: []score.Set{{6, 4}}}),
		Category: category,
	}
}

func TestMatchID(t *testing.T) {
	a := MatchID("1", "Ana", "Bea", "6-4")
	if a != MatchID("1", "Ana", "Bea", "6-4") {
		t.Error("MatchID is not deterministic")
	}
	if a == MatchID("2", "Ana", "Bea", "6-4") {
		t.Error("MatchID ignores the draw")
	}
	if a == MatchID("1", "Bea", "Ana", "6-4") {
		t.Error("MatchID ignores who won")
	}
	if len(a) != 40 {
		t.Errorf("MatchID length = %d, want 40 hex chars", len(a))
	}
}

func TestDiff(t *testing.T) {
	old1 := result("MS", "1/2/2021 10:00", "Ana", "Bea")
	old2 := result("MS", "1/2/2021 11:00", "Cai", "Dan")
	new1 := result("WS", "1/3/2021 09:00", "Eva", "Fay")
	new2 := result("MS", "1/3/2021 12:00", "Ana", "Cai")
	new3 := result("MS", "", "Gus", "Hal")
	new4 := result("MS", "1/3/2021 08:00", "Ian", "Jon")

	previous := CreateSnapshot("T1", []Result{old1, old2}, "2021-01-02T20:00:00Z")

	tests := []struct {
		name     string
		previous *Snapshot
		current  []Result
		wantIDs  []string
	}{
		{
			name:     "nothing new",
			previous: previous,
			current:  []Result{old2, old1},
			wantIDs:  []string{},
		},
		{
			name:     "new results sorted by category then time",
			previous: previous,
			current:  []Result{old1, new1, new3, new2, old2, new4},
			wantIDs:  []string{new4.ID, new2.ID, new3.ID, new1.ID},
		},
		{
			name:     "nil snapshot treats all as new",
			previous: nil,
			current:  []Result{old1},
			wantIDs:  []string{old1.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.previous, tt.current)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Diff() returned %d results, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result %d = %s vs %s, want id %s", i, got[i].WinnerName, got[i].LoserName, id)
				}
			}
		})
	}
}

func TestCreateSnapshot(t *testing.T) {
	results := []Result{result("MS", "", "Ana", "Bea"), result("MS", "", "Cai", "Dan")}
	snap := CreateSnapshot("T1", results, "now")

	if len(snap.Results) != 2 {
		t.Fatalf("snapshot holds %d results, want 2", len(snap.Results))
	}
	if snap.Results[results[0].ID].WinnerName != "Ana" {
		t.Error("snapshot entries must not alias the loop variable")
	}
	if snap.TournamentID != "T1" || snap.UpdatedAt != "now" {
		t.Errorf("snapshot header = %q/%q", snap.TournamentID, snap.UpdatedAt)
	}
}
