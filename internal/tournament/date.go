package tournament

import (
	"strings"
	"time"
)

var timestampLayouts = []string{
	"Mon 1/2/2006 3:04 PM",
	"Mon 1/2/2006 15:04",
	"Mon 1/2/2006",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// ParseTimestamp parses the timestamps found on match lists ("Sat 1/2/2021
// 10:00 AM", "1/2/2021 14:30") and the ISO dates given to inferred matches.
// Returns time.Time{} (zero value) if parsing fails.
func ParseTimestamp(text string) time.Time {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return time.Time{}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Time returns the parsed Timestamp of the match.
func (m Match) Time() time.Time {
	return ParseTimestamp(m.Timestamp)
}
