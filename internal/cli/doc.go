// Package cli implements the command-line interface for tsw.
//
// The cli package provides the Cobra-based CLI for listing a tournament's
// events, draws, matches and reconstructed brackets, and for collecting every
// match of a tournament with optional date inference, filtering, snapshot
// diffing and a SQLite archive. Output is a table, JSON, or an iCalendar feed.
package cli
