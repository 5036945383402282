// Package scraper fetches and parses tournament pages from tournamentsoftware.com.
//
// A Client acknowledges the site's cookie wall once, then fetches the events
// list of a tournament, the draws of an event, the match list and bracket of a
// draw, and the tournament's day list. Pages are parsed with goquery into
// tournament records and draw tables; AllMatches ties them together and can
// date matches the match list leaves undated from the draw bracket.
package scraper
