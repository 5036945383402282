package draw

import "strings"

// Matcher decides whether a bracket match is the one between winner and loser.
type Matcher func(m Match, winner, loser string) bool

// SubstringPair accepts m when each name is contained in one of its players.
// It tolerates formatting drift between the match list and the draw, at the
// cost of false positives when a name is a substring of another player's.
func SubstringPair(m Match, winner, loser string) bool {
	return holds(m, winner) && holds(m, loser)
}

// ExactPair accepts m when its players are exactly winner and loser, in
// either order.
func ExactPair(m Match, winner, loser string) bool {
	return (m[0] == winner && m[1] == loser) || (m[0] == loser && m[1] == winner)
}

func holds(m Match, name string) bool {
	return strings.Contains(m[0], name) || strings.Contains(m[1], name)
}

// MatchDate returns the date of the first round, in fixture order, holding a
// match accepted by match. ok is false when no round holds the pair or either
// name is empty; when ok is true date may still be empty if the round was
// never dated. A nil match uses SubstringPair.
func MatchDate(winner, loser string, f Fixture, match Matcher) (date string, ok bool) {
	if winner == "" || loser == "" {
		return "", false
	}
	if match == nil {
		match = SubstringPair
	}

	for _, r := range f.Rounds {
		for _, m := range r.Matches {
			if match(m, winner, loser) {
				return r.Date, true
			}
		}
	}
	return "", false
}
