package draw

import "strings"

// Match is the pair of player names meeting in one bracket match.
type Match [2]string

// Round is one round of a fixture. Date is empty until assigned.
type Round struct {
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
	Date    string  `json:"date,omitempty"`
}

// Fixture is the ordered list of rounds of a draw, earliest first.
type Fixture struct {
	Rounds []Round `json:"rounds"`
}

// Round returns the round called name.
func (f Fixture) Round(name string) (Round, bool) {
	for _, r := range f.Rounds {
		if r.Name == name {
			return r, true
		}
	}
	return Round{}, false
}

// MatchCount returns the number of matches across all rounds.
func (f Fixture) MatchCount() int {
	n := 0
	for _, r := range f.Rounds {
		n += len(r.Matches)
	}
	return n
}

// Shape tells whether a reconstructed bracket can be trusted.
type Shape int

const (
	// Regular brackets have 2^(R+1) rows for R rounds and no byes.
	Regular Shape = iota
	// Irregular brackets have byes, short or oversized columns. Their
	// pairings are best effort.
	Irregular
)

func (s Shape) String() string {
	if s == Regular {
		return "regular"
	}
	return "irregular"
}

// Bracket is the result of Reconstruct.
type Bracket struct {
	Shape   Shape
	Fixture Fixture

	// ExpectedRows is 2^(R+1) for R rounds.
	ExpectedRows int
	// MissingSlots counts stride positions past the end of their column.
	MissingSlots int
	// Byes counts slots reading "Bye".
	Byes int
}

// MaxRounds is the most round columns Reconstruct will pair. A 20 round draw
// already has over a million players.
const MaxRounds = 20

// Reconstruct pairs the leaf-indexed round columns into matches.
//
// For round r (0-based) of R, the slot index e starts at 2^r and advances by
// 2^(r+1) while below 2^(R+1), which picks exactly one row per player per
// match in a column where each name is repeated over the rows its run spans.
// Consecutive picks form a match. Round r of a regular draw therefore has
// 2^(R-1-r) matches and the whole fixture 2^R - 1.
//
// Stride positions past the end of a short column are counted in
// MissingSlots; a match cut short by the column end keeps an empty second
// slot. Short columns, byes and oversized columns mark the bracket Irregular.
// Tables with more than MaxRounds round columns are Irregular with an empty
// fixture.
func Reconstruct(rounds []RoundSlots) Bracket {
	total := len(rounds)
	b := Bracket{Shape: Regular}
	if total == 0 {
		return b
	}
	if total > MaxRounds {
		b.Shape = Irregular
		return b
	}

	limit := 1 << (total + 1)
	b.ExpectedRows = limit

	for r, round := range rounds {
		if len(round.Slots) != limit {
			b.Shape = Irregular
		}

		stride := 1 << (r + 1)
		end := min(len(round.Slots), limit)

		out := Round{Name: round.Name, Matches: make([]Match, 0, end/(2*stride)+1)}
		var m Match
		player, picked := 0, 0
		for e := 1 << r; e < end; e += stride {
			m[player] = round.Slots[e]
			if strings.EqualFold(m[player], "Bye") {
				b.Byes++
				b.Shape = Irregular
			}
			picked++

			player++
			if player == 2 {
				out.Matches = append(out.Matches, m)
				m = Match{}
				player = 0
			}
		}
		if player == 1 {
			out.Matches = append(out.Matches, m)
		}

		if missing := limit/stride - picked; missing > 0 {
			b.MissingSlots += missing
			b.Shape = Irregular
		}

		b.Fixture.Rounds = append(b.Fixture.Rounds, out)
	}

	return b
}

// Fixtures is Reconstruct without the shape information.
func Fixtures(rounds []RoundSlots) Fixture {
	return Reconstruct(rounds).Fixture
}
