package scraper

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pfrederiksen/tsw/internal/draw"
	"github.com/pfrederiksen/tsw/internal/logger"
	"github.com/pfrederiksen/tsw/internal/tournament"
)

// DefaultDrawType is the draw type AllMatches keeps when none is given.
const DefaultDrawType = "Elimination"

// AllOptions controls AllMatches.
type AllOptions struct {
	// DrawTypes lists the draw types to fetch, compared case-insensitively.
	// Empty means DefaultDrawType.
	DrawTypes []string

	// InferDates dates matches the match list leaves undated from the draw
	// bracket and the tournament's day list.
	InferDates bool

	// Workers bounds the number of draws fetched at once. Values below 1
	// mean one.
	Workers int

	// Matcher pairs a match's players with a bracket match. Nil means
	// draw.SubstringPair.
	Matcher draw.Matcher
}

func (o AllOptions) wantsType(drawType string) bool {
	types := o.DrawTypes
	if len(types) == 0 {
		types = []string{DefaultDrawType}
	}
	for _, t := range types {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(drawType)) {
			return true
		}
	}
	return false
}

type drawJob struct {
	event tournament.Event
	draw  tournament.Draw
}

// AllMatches fetches every match of every draw of the wanted types in a
// tournament. Results keep page order: events, then draws, then match rows.
func (c *Client) AllMatches(ctx context.Context, tournamentID string, opts AllOptions) ([]tournament.Result, error) {
	events, err := c.Events(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	var jobs []drawJob
	for _, ev := range events {
		draws, err := c.Draws(ctx, tournamentID, ev.ID)
		if err != nil {
			return nil, err
		}
		for _, d := range draws {
			if !opts.wantsType(d.Type) {
				c.log.Debug("Skipping draw", logger.Fields{"draw": d.ID, "type": d.Type})
				continue
			}
			jobs = append(jobs, drawJob{event: ev, draw: d})
		}
	}

	var roundDates []string
	if opts.InferDates {
		roundDates, err = c.RoundDates(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([][]tournament.Result, len(jobs))
	sem := make(chan struct{}, workers)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job drawJob) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			res, err := c.drawResults(ctx, tournamentID, job, roundDates, opts)
			if err != nil {
				errOnce.Do(func() {
					firstErr = fmt.Errorf("draw %s: %w", job.draw.ID, err)
					cancel()
				})
				return
			}
			results[i] = res
		}(i, job)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var all []tournament.Result
	for i := range jobs {
		all = append(all, results[i]...)
	}

	logger.SetGauge("tournament.results", float64(len(all)))
	c.log.Info("Fetched all matches", logger.Fields{
		"tournament": tournamentID,
		"draws":      len(jobs),
		"results":    len(all),
	})
	return all, nil
}

func (c *Client) drawResults(ctx context.Context, tournamentID string, job drawJob, roundDates []string, opts AllOptions) ([]tournament.Result, error) {
	matches, err := c.Matches(ctx, tournamentID, job.draw.ID)
	if err != nil {
		return nil, err
	}

	results := make([]tournament.Result, len(matches))
	undated := 0
	for i, m := range matches {
		results[i] = tournament.Result{
			Match:    m,
			Category: job.event.Name,
			EventID:  job.event.ID,
			DrawID:   job.draw.ID,
		}
		if m.Timestamp != "" {
			results[i].DateSource = tournament.DateFromPage
		} else {
			undated++
		}
	}

	if !opts.InferDates || undated == 0 {
		return results, nil
	}

	fixture, err := c.datedFixture(ctx, tournamentID, job.draw.ID, roundDates)
	if err != nil {
		return nil, err
	}

	for i := range results {
		r := &results[i]
		if r.Timestamp != "" {
			continue
		}
		date, ok := draw.MatchDate(r.WinnerName, r.LoserName, fixture, opts.Matcher)
		if !ok || date == "" {
			continue
		}
		r.Timestamp = date
		r.DateSource = tournament.DateFromInferred
	}
	return results, nil
}

// Bracket fetches and reconstructs the bracket of one draw.
func (c *Client) Bracket(ctx context.Context, tournamentID, drawID string) (draw.Bracket, error) {
	table, err := c.DrawTable(ctx, tournamentID, drawID)
	if err != nil {
		return draw.Bracket{}, err
	}

	b := draw.Reconstruct(draw.SlotsFromTable(table, c.log))
	if b.Shape == draw.Irregular {
		c.log.Warn("Irregular draw", logger.Fields{
			"draw":          drawID,
			"expected_rows": b.ExpectedRows,
			"missing_slots": b.MissingSlots,
			"byes":          b.Byes,
		})
	}
	return b, nil
}

func (c *Client) datedFixture(ctx context.Context, tournamentID, drawID string, roundDates []string) (draw.Fixture, error) {
	b, err := c.Bracket(ctx, tournamentID, drawID)
	if err != nil {
		return draw.Fixture{}, err
	}
	return draw.AssignDates(b.Fixture, roundDates), nil
}
