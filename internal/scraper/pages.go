package scraper

import (
	"context"
	"errors"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/tsw/internal/draw"
	"github.com/pfrederiksen/tsw/internal/logger"
	"github.com/pfrederiksen/tsw/internal/names"
	"github.com/pfrederiksen/tsw/internal/params"
	"github.com/pfrederiksen/tsw/internal/score"
	"github.com/pfrederiksen/tsw/internal/tournament"
)

// Pages are relative to the configured site URL, which carries the /sport
// prefix.
const (
	eventsPage  = "events.aspx"
	eventPage   = "event.aspx"
	matchesPage = "drawmatches.aspx"
	drawPage    = "draw.aspx"
	daysPage    = "matches.aspx"
)

// ErrNoTable is returned when a page holds no table to read.
var ErrNoTable = errors.New("no table found")

// Events fetches the events (categories) of a tournament.
func (c *Client) Events(ctx context.Context, tournamentID string) ([]tournament.Event, error) {
	var events []tournament.Event
	err := c.fetch(ctx, eventsPage, url.Values{"id": {tournamentID}}, func(r io.Reader) error {
		var err error
		events, err = parseEvents(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("Fetched events", logger.Fields{
		"tournament": tournamentID,
		"count":      len(events),
	})
	return events, nil
}

// Draws fetches the draws of one event.
func (c *Client) Draws(ctx context.Context, tournamentID, eventID string) ([]tournament.Draw, error) {
	var draws []tournament.Draw
	q := url.Values{"id": {tournamentID}, "event": {eventID}}
	err := c.fetch(ctx, eventPage, q, func(r io.Reader) error {
		var err error
		draws, err = parseDraws(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return draws, nil
}

// Matches fetches the match list of one draw.
func (c *Client) Matches(ctx context.Context, tournamentID, drawID string) ([]tournament.Match, error) {
	var matches []tournament.Match
	q := url.Values{"id": {tournamentID}, "draw": {drawID}}
	err := c.fetch(ctx, matchesPage, q, func(r io.Reader) error {
		var err error
		matches, err = parseMatches(r, drawID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// DrawTable fetches the bracket of one draw as leaf-indexed columns.
func (c *Client) DrawTable(ctx context.Context, tournamentID, drawID string) (draw.Table, error) {
	var table draw.Table
	q := url.Values{"id": {tournamentID}, "draw": {drawID}}
	err := c.fetch(ctx, drawPage, q, func(r io.Reader) error {
		var err error
		table, err = parseDrawTable(r)
		return err
	})
	if err != nil {
		return draw.Table{}, err
	}
	return table, nil
}

// RoundDates fetches the days the tournament is played on, earliest first,
// formatted as "2006-01-02".
func (c *Client) RoundDates(ctx context.Context, tournamentID string) ([]string, error) {
	var dates []string
	err := c.fetch(ctx, daysPage, url.Values{"id": {tournamentID}}, func(r io.Reader) error {
		var err error
		dates, err = parseRoundDates(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// firstTable returns the first table of the document.
func firstTable(r io.Reader) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}
	return table, nil
}

// linkParam returns the named query parameter of the first link in sel that
// carries it.
func linkParam(sel *goquery.Selection, name string) string {
	var value string
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		value = params.Get(href).First(name)
		return value == ""
	})
	return value
}

func parseEvents(r io.Reader) ([]tournament.Event, error) {
	table, err := firstTable(r)
	if err != nil {
		return nil, err
	}

	var events []tournament.Event
	for _, rec := range records(table) {
		id := linkParam(rec.row, "event")
		if id == "" {
			continue
		}
		events = append(events, tournament.Event{
			ID:      id,
			Name:    rec.cells["Name"],
			Draws:   rec.cells["Draws"],
			Entries: rec.cells["Entries"],
		})
	}
	return events, nil
}

func parseDraws(r io.Reader) ([]tournament.Draw, error) {
	table, err := firstTable(r)
	if err != nil {
		return nil, err
	}

	var draws []tournament.Draw
	for _, rec := range records(table) {
		id := linkParam(rec.row, "draw")
		if id == "" {
			continue
		}
		draws = append(draws, tournament.Draw{
			ID:            id,
			Name:          rec.cells["Draw"],
			Size:          rec.cells["Size"],
			Type:          rec.cells["Type"],
			Qualification: rec.cells["Qualification"],
			Consolation:   rec.cells["Consolation"],
		})
	}
	return draws, nil
}

// firstContent returns the trimmed text of the first child node of sel.
func firstContent(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Contents().First().Text())
}

// player reads a name and country from one side of a match row.
func player(side *goquery.Selection) (name, country string) {
	row := side.Find("tr").First()
	name = names.RemoveSeeds(firstContent(row.Find(`a[href^="player.aspx"]`).First()))
	country = names.Country(firstContent(row.Find("span.flag").First()))
	return name, country
}

func parseMatches(r io.Reader, drawID string) ([]tournament.Match, error) {
	table, err := firstTable(r)
	if err != nil {
		return nil, err
	}

	var matches []tournament.Match
	table.ChildrenFiltered("tbody").ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
		var (
			timestamp             string
			sc                    score.Score
			sides                 int
			winner, loser         string
			winnerCtry, loserCtry string
		)

		tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
			switch {
			case td.HasClass("plannedtime"):
				contents := td.Contents()
				date := strings.TrimSpace(contents.Eq(0).Text())
				clock := firstContent(contents.Eq(1))
				timestamp = strings.TrimSpace(date + " " + clock)
			case td.ChildrenFiltered("span.score").Length() > 0:
				sc = score.FromSelection(td.ChildrenFiltered("span.score").First())
			case td.ChildrenFiltered("table").Length() > 0:
				side := td.ChildrenFiltered("table").First()
				switch sides {
				case 0:
					winner, winnerCtry = player(side)
				case 1:
					loser, loserCtry = player(side)
				}
				sides++
			}
		})

		if winner == "" && loser == "" {
			return
		}
		matches = append(matches, tournament.NewMatch(drawID, timestamp, winner, winnerCtry, loser, loserCtry, sc))
	})
	return matches, nil
}

// parseDrawTable reads the bracket: the first table with a round column.
func parseDrawTable(r io.Reader) (draw.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return draw.Table{}, err
	}

	bracket := doc.Find("table").FilterFunction(func(_ int, table *goquery.Selection) bool {
		found := false
		headerCells(table).EachWithBreak(func(_ int, th *goquery.Selection) bool {
			found = draw.IsRoundHeader(cellText(th))
			return !found
		})
		return found
	}).First()
	if bracket.Length() == 0 {
		return draw.Table{}, ErrNoTable
	}
	return drawTable(bracket), nil
}

func parseRoundDates(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var days []time.Time
	doc.Find(`a[href*="matches.aspx"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		d := params.Get(href).First("d")
		if d == "" || seen[d] {
			return
		}
		day, err := time.Parse("20060102", d)
		if err != nil {
			return
		}
		seen[d] = true
		days = append(days, day)
	})

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	dates := make([]string, len(days))
	for i, day := range days {
		dates[i] = day.Format("2006-01-02")
	}
	return dates, nil
}
