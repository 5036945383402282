package filter

import (
	"fmt"
	"strings"
	"time"
)

// ParseDateRange parses a date range string into start and end times.
//
// Supported formats:
//   - "2021-03-01" - a single day
//   - "2021-03" - an entire month
//   - "2021-03-01..2021-03-07" - a span of days
//   - "2021-03-01.." or "..2021-03-07" - open-ended
//
// Returns (dateFrom, dateTo, error). Either may be nil for an open end.
// Start time is at 00:00:00, end time is at 23:59:59, both UTC.
func ParseDateRange(input string) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	start, end, isSpan := strings.Cut(input, "..")
	if !isSpan {
		from, to, err := parsePeriod(input)
		if err != nil {
			return nil, nil, err
		}
		return &from, &to, nil
	}

	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil, nil, fmt.Errorf("date range needs at least one end")
	}

	var from, to *time.Time
	if start != "" {
		first, _, err := parsePeriod(start)
		if err != nil {
			return nil, nil, err
		}
		from = &first
	}
	if end != "" {
		_, last, err := parsePeriod(end)
		if err != nil {
			return nil, nil, err
		}
		to = &last
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("start date must be before end date")
	}

	return from, to, nil
}

// parsePeriod parses a day or a month into its first and last second.
func parsePeriod(text string) (time.Time, time.Time, error) {
	if day, err := time.Parse("2006-01-02", text); err == nil {
		return day, endOfDay(day), nil
	}

	if month, err := time.Parse("2006-01", text); err == nil {
		last := month.AddDate(0, 1, -1)
		return month, endOfDay(last), nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q. Use '2021-03-01', '2021-03' or '2021-03-01..2021-03-07'", text)
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)
}
