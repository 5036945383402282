package draw

import "testing"

func datedFixture() Fixture {
	return Fixture{Rounds: []Round{
		{Name: "Round 1", Date: "2021-01-01", Matches: []Match{{"Alice", "Bob"}, {"Carla Ruiz", "Dana"}}},
		{Name: "Semi Finals", Date: "2021-01-02", Matches: []Match{{"Alice", "Carla Ruiz"}}},
		{Name: "Finals", Matches: []Match{{"Alice", "Eve"}}},
	}}
}

func TestMatchDate(t *testing.T) {
	tests := []struct {
		name    string
		winner  string
		loser   string
		matcher Matcher
		want    string
		wantOK  bool
	}{
		{"first round pair", "Alice", "Bob", nil, "2021-01-01", true},
		{"loser listed first", "Bob", "Alice", nil, "2021-01-01", true},
		{"later round", "Carla Ruiz", "Alice", nil, "2021-01-02", true},
		{"substring tolerated", "Alice", "Carla", SubstringPair, "2021-01-02", true},
		{"substring rejected by exact", "Alice", "Carla", ExactPair, "", false},
		{"exact pair", "Carla Ruiz", "Dana", ExactPair, "2021-01-01", true},
		{"undated round still found", "Alice", "Eve", nil, "", true},
		{"absent pair", "Alice", "Zoe", nil, "", false},
		{"empty winner", "", "Bob", nil, "", false},
		{"empty loser", "Alice", "", ExactPair, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchDate(tt.winner, tt.loser, datedFixture(), tt.matcher)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("MatchDate(%q, %q) = %q, %v, want %q, %v", tt.winner, tt.loser, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatchDate_FirstRoundWins(t *testing.T) {
	f := Fixture{Rounds: []Round{
		{Name: "Round 1", Date: "2021-01-01", Matches: []Match{{"Ann Lee", "Bo"}}},
		{Name: "Finals", Date: "2021-01-05", Matches: []Match{{"Ann", "Bo"}}},
	}}

	got, ok := MatchDate("Ann", "Bo", f, SubstringPair)
	if !ok || got != "2021-01-01" {
		t.Errorf("MatchDate() = %q, %v, want %q", got, ok, "2021-01-01")
	}

	got, ok = MatchDate("Ann", "Bo", f, ExactPair)
	if !ok || got != "2021-01-05" {
		t.Errorf("MatchDate() = %q, %v, want %q", got, ok, "2021-01-05")
	}
}

func TestMatchDate_EndToEnd(t *testing.T) {
	slots := SlotsFromTable(leafTable(4), nil)
	f := AssignDates(Fixtures(slots), []string{"2021-03-01", "2021-03-02", "2021-03-03", "2021-03-04"})

	got, ok := MatchDate("Player 8", "Player 12", f, ExactPair)
	if !ok || got != "2021-03-03" { // Semi Finals
		t.Errorf("MatchDate() = %q, %v, want %q", got, ok, "2021-03-03")
	}

	got, ok = MatchDate("Player 0", "Player 8", f, ExactPair)
	if !ok || got != "2021-03-04" {
		t.Errorf("MatchDate() = %q, %v, want %q", got, ok, "2021-03-04")
	}
}
