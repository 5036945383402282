package draw

import "fmt"

// RoundLabel names round index (0-based) of a draw with total rounds. The last
// three rounds are always "Quarter Finals", "Semi Finals" and "Finals"; the
// ones before are "Round 1", "Round 2" and so on.
func RoundLabel(index, total int) string {
	switch total - index {
	case 1:
		return "Finals"
	case 2:
		return "Semi Finals"
	case 3:
		return "Quarter Finals"
	}
	return fmt.Sprintf("Round %d", index+1)
}

// AssignDates sets round dates from a tournament's day list, earliest round
// first. The i-th date is given to the round labelled RoundLabel(i, len(dates)).
// Rounds without a matching date keep the date they had. f is not modified.
func AssignDates(f Fixture, dates []string) Fixture {
	byLabel := make(map[string]string, len(dates))
	for i, date := range dates {
		byLabel[RoundLabel(i, len(dates))] = date
	}

	out := Fixture{Rounds: make([]Round, len(f.Rounds))}
	for i, r := range f.Rounds {
		if date, ok := byLabel[r.Name]; ok {
			r.Date = date
		}
		out.Rounds[i] = r
	}
	return out
}
