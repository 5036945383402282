// Package draw reconstructs single-elimination brackets from the draw tables
// published on tournament pages and uses them to date matches.
//
// The site renders a draw as one table column per round with one row per leaf
// position, repeating a player's name in every row their run covers. Slots are
// read out of that table (SlotsFromTable), paired into matches with a
// power-of-two stride (Reconstruct), labelled with round names (RoundLabel),
// dated from the tournament's day list (AssignDates) and finally searched for a
// given winner/loser pair (MatchDate).
//
// Everything here is pure: no I/O, no shared state. Diagnostics go to an
// optional Warner supplied by the caller.
package draw
