package tournament

import (
	"crypto/sha1"
	"fmt"

	"github.com/pfrederiksen/tsw/internal/score"
)

// Event is one category of a tournament, e.g. "Men's Singles".
type Event struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Draws   string `json:"draws"`
	Entries string `json:"entries"`
}

// Draw is one draw of an event. Type is the site's draw type, usually
// "Elimination" or "Round Robin".
type Draw struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Size          string `json:"size"`
	Type          string `json:"type"`
	Qualification string `json:"qualification"`
	Consolation   string `json:"consolation"`
}

// Match is one row of a draw's match list.
type Match struct {
	ID            string      `json:"id"`
	Timestamp     string      `json:"timestamp,omitempty"`
	WinnerName    string      `json:"winner_name"`
	WinnerCountry string      `json:"winner_country,omitempty"`
	LoserName     string      `json:"loser_name"`
	LoserCountry  string      `json:"loser_country,omitempty"`
	Score         score.Score `json:"score"`
}

// Where a Result's timestamp came from.
const (
	DateFromPage     = "page"
	DateFromInferred = "inferred"
)

// Result is a match placed in its tournament context.
type Result struct {
	Match
	Category   string `json:"category"`
	EventID    string `json:"event_id"`
	DrawID     string `json:"draw_id"`
	DateSource string `json:"date_source,omitempty"`
}

// MatchID creates a deterministic ID for a match from its stable fields
func MatchID(drawID, winner, loser, scoreText string) string {
	h := sha1.New()
	h.Write([]byte(drawID + "|" + winner + "|" + loser + "|" + scoreText))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// NewMatch creates a Match with its ID populated.
func NewMatch(drawID, timestamp, winner, winnerCountry, loser, loserCountry string, sc score.Score) Match {
	return Match{
		ID:            MatchID(drawID, winner, loser, sc.String()),
		Timestamp:     timestamp,
		WinnerName:    winner,
		WinnerCountry: winnerCountry,
		LoserName:     loser,
		LoserCountry:  loserCountry,
		Score:         sc,
	}
}
