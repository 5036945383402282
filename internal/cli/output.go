package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pfrederiksen/tsw/internal/calendar"
	"github.com/pfrederiksen/tsw/internal/draw"
	"github.com/pfrederiksen/tsw/internal/store"
	"github.com/pfrederiksen/tsw/internal/tournament"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatICS   OutputFormat = "ics"
)

// ResultsOutput contains match results to be output
type ResultsOutput struct {
	CheckedAt      time.Time           `json:"checked_at"`
	TournamentID   string              `json:"tournament_id"`
	Results        []tournament.Result `json:"results"`
	ResultCount    int                 `json:"result_count"`
	Filter         string              `json:"filter,omitempty"`
	IncludeCountry bool                `json:"-"`
}

// BracketOutput is the JSON form of a reconstructed draw
type BracketOutput struct {
	Shape        string       `json:"shape"`
	ExpectedRows int          `json:"expected_rows"`
	MissingSlots int          `json:"missing_slots,omitempty"`
	Byes         int          `json:"byes,omitempty"`
	Rounds       []draw.Round `json:"rounds"`
}

// resultsOutput wraps results for writing. Countries are dropped unless
// --include-country is set.
func resultsOutput(tournamentID string, results []tournament.Result) *ResultsOutput {
	if !flagIncludeCountry {
		stripped := make([]tournament.Result, len(results))
		for i, r := range results {
			r.WinnerCountry, r.LoserCountry = "", ""
			stripped[i] = r
		}
		results = stripped
	}

	return &ResultsOutput{
		CheckedAt:      time.Now().UTC(),
		TournamentID:   tournamentID,
		Results:        results,
		ResultCount:    len(results),
		IncludeCountry: flagIncludeCountry,
	}
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeEvents outputs the events of a tournament
func writeEvents(w io.Writer, events []tournament.Event, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, events)
	}

	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tDRAWS\tENTRIES")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Draws, e.Entries)
	}
	return tw.Flush()
}

// writeDraws outputs the draws of an event
func writeDraws(w io.Writer, draws []tournament.Draw, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, draws)
	}

	if len(draws) == 0 {
		fmt.Fprintln(w, "No draws found.")
		return nil
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tTYPE\tQUALIFICATION\tCONSOLATION")
	for _, d := range draws {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Size, d.Type, d.Qualification, d.Consolation)
	}
	return tw.Flush()
}

// writeResults outputs match results in the specified format
func writeResults(w io.Writer, out *ResultsOutput, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, out)
	case FormatICS:
		_, err := io.WriteString(w, calendar.GenerateICS(out.Results))
		return err
	case FormatTable:
		return writeResultsTable(w, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeResultsTable(w io.Writer, out *ResultsOutput) error {
	if out.ResultCount == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	columns := []string{"CATEGORY", "TIMESTAMP", "WINNER"}
	if out.IncludeCountry {
		columns = append(columns, "")
	}
	columns = append(columns, "LOSER")
	if out.IncludeCountry {
		columns = append(columns, "")
	}
	columns = append(columns, "SCORE")

	tw := newTable(w)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, r := range out.Results {
		timestamp := r.Timestamp
		if r.DateSource == tournament.DateFromInferred {
			timestamp += " *"
		}

		row := []string{r.Category, timestamp, r.WinnerName}
		if out.IncludeCountry {
			row = append(row, r.WinnerCountry)
		}
		row = append(row, r.LoserName)
		if out.IncludeCountry {
			row = append(row, r.LoserCountry)
		}
		row = append(row, r.Score.String())
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if out.Filter != "" && out.Filter != "No active filters" {
		fmt.Fprintf(w, "\nFilter: %s\n", out.Filter)
	}
	fmt.Fprintf(w, "\nTotal: %d matches\n", out.ResultCount)
	return nil
}

// writeBracket outputs a reconstructed draw round by round
func writeBracket(w io.Writer, b draw.Bracket, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, BracketOutput{
			Shape:        b.Shape.String(),
			ExpectedRows: b.ExpectedRows,
			MissingSlots: b.MissingSlots,
			Byes:         b.Byes,
			Rounds:       b.Fixture.Rounds,
		})
	}

	if len(b.Fixture.Rounds) == 0 {
		fmt.Fprintln(w, "No rounds found.")
		return nil
	}

	for _, r := range b.Fixture.Rounds {
		if r.Date != "" {
			fmt.Fprintf(w, "\n%s (%s):\n", r.Name, r.Date)
		} else {
			fmt.Fprintf(w, "\n%s:\n", r.Name)
		}
		for _, m := range r.Matches {
			fmt.Fprintf(w, "  %s vs %s\n", slot(m[0]), slot(m[1]))
		}
	}

	fmt.Fprintf(w, "\nTotal: %d matches in %d rounds (%s)\n", b.Fixture.MatchCount(), len(b.Fixture.Rounds), b.Shape)
	return nil
}

func slot(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

// writeRuns outputs archived runs
func writeRuns(w io.Writer, runs []store.Run, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found.")
		return nil
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "RUN\tCREATED\tRESULTS")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", r.ID, r.CreatedAt.UTC().Format(time.RFC3339), r.ResultCount)
	}
	return tw.Flush()
}
