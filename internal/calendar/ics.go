package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/tsw/internal/tournament"
)

// MatchDuration is the length given to matches with a start time.
const MatchDuration = 90 * time.Minute

// GenerateICS generates an iCalendar (.ics) file with one event per dated
// result. Results whose timestamp cannot be parsed are left out. Date-only
// timestamps, such as inferred round dates, become all-day events.
func GenerateICS(results []tournament.Result) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//tsw//tournament results//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()
	for _, r := range results {
		start := r.Time()
		if start.IsZero() {
			continue
		}
		writeEvent(&ics, r, start, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

func writeEvent(ics *strings.Builder, r tournament.Result, start, now time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%s@tournamentsoftware.com\r\n", r.ID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))

	if strings.Contains(r.Timestamp, ":") {
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(start.Add(MatchDuration))))
	} else {
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", formatICSDate(start)))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", formatICSDate(start.AddDate(0, 0, 1))))
	}

	summary := fmt.Sprintf("%s d. %s", r.WinnerName, r.LoserName)
	if r.Category != "" {
		summary = fmt.Sprintf("%s: %s", r.Category, summary)
	}
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	description := fmt.Sprintf("%s vs %s", player(r.WinnerName, r.WinnerCountry), player(r.LoserName, r.LoserCountry))
	if sc := r.Score.String(); sc != "" {
		description = fmt.Sprintf("%s\nScore: %s", description, sc)
	}
	if r.DateSource == tournament.DateFromInferred {
		description += "\nDate inferred from the draw"
	}
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")

	ics.WriteString("END:VEVENT\r\n")
}

func player(name, country string) string {
	if country == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, country)
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats a time.Time as an iCalendar date
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
