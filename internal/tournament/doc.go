// Package tournament defines the records scraped from a tournament site:
// events, their draws, and the matches played in each draw.
//
// Matches get a deterministic SHA1-based ID from their draw, players and score
// so results can be tracked across runs through snapshots (see Diff).
package tournament
