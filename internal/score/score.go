package score

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	setPattern      = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	tiebreakPattern = regexp.MustCompile(`\(\s*(\d+)\s*\)`)
	leadingSet      = regexp.MustCompile(`^\d+-\d+`)
)

// Set holds the games won by each side and, when played, the tiebreak points.
// An empty Set means the text could not be parsed, not 0-0.
type Set []int

// Score is the ordered list of sets of a match. Raw is only populated when the
// score cell had no per-set spans (walkovers, retirements and other irregular
// markup) and holds the cell contents as found.
type Score struct {
	Sets []Set    `json:"sets,omitempty"`
	Raw  []string `json:"raw,omitempty"`
}

// DashedToSet parses "6-3", "6-3 (5)" or "6-7(5)" into [6 3], [6 3 5], [6 7 5].
// Every dash-separated pair found is flattened in order, so "6-3 4-6" yields
// [6 3 4 6]. A pair with a side too large for an int is dropped whole. The
// tiebreak is appended only when exactly one parenthesized number is present.
func DashedToSet(text string) Set {
	var set Set
	for _, pair := range setPattern.FindAllStringSubmatch(text, -1) {
		a, errA := strconv.Atoi(pair[1])
		b, errB := strconv.Atoi(pair[2])
		if errA != nil || errB != nil {
			continue
		}
		set = append(set, a, b)
	}
	if len(set) == 0 {
		return nil
	}

	tiebreaks := tiebreakPattern.FindAllStringSubmatch(text, -1)
	if len(tiebreaks) == 1 {
		if n, err := strconv.Atoi(tiebreaks[0][1]); err == nil {
			set = append(set, n)
		}
	}
	return set
}

// IsScore reports whether text starts with a dashed set score.
func IsScore(text string) bool {
	return leadingSet.MatchString(text)
}

// FromSelection builds a Score from a span.score cell. Each direct child span
// is one set, parsed from its first text content in document order. A cell
// without child spans is returned as Raw contents.
func FromSelection(cell *goquery.Selection) Score {
	spans := cell.ChildrenFiltered("span")
	if spans.Length() == 0 {
		var raw []string
		cell.Contents().Each(func(_ int, node *goquery.Selection) {
			raw = append(raw, node.Text())
		})
		return Score{Raw: raw}
	}

	sets := make([]Set, 0, spans.Length())
	spans.Each(func(_ int, span *goquery.Selection) {
		sets = append(sets, DashedToSet(span.Contents().First().Text()))
	})
	return Score{Sets: sets}
}

// String renders a set as "6-3" or "7-6(5)".
func (s Set) String() string {
	switch len(s) {
	case 0:
		return ""
	case 2:
		return fmt.Sprintf("%d-%d", s[0], s[1])
	case 3:
		return fmt.Sprintf("%d-%d(%d)", s[0], s[1], s[2])
	}
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

// String renders the score as "6-1 7-6(5)", or the trimmed raw contents when
// the cell had no sets.
func (s Score) String() string {
	parts := make([]string, 0, len(s.Sets)+len(s.Raw))
	if len(s.Sets) > 0 {
		for _, set := range s.Sets {
			parts = append(parts, set.String())
		}
	} else {
		for _, raw := range s.Raw {
			if raw = strings.TrimSpace(raw); raw != "" {
				parts = append(parts, raw)
			}
		}
	}
	return strings.Join(parts, " ")
}

// IsEmpty reports whether nothing was parsed or captured.
func (s Score) IsEmpty() bool {
	return len(s.Sets) == 0 && len(s.Raw) == 0
}
