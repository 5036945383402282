// Package names normalizes player name and nationality strings scraped from
// tournament pages.
//
// The site decorates entrant names with seeding annotations ("[1]", "[5/8]")
// and bracketed IOC-style country codes ("[COL]"). Country extracts the code,
// RemoveSeeds and Clean strip the annotations for display and comparison.
package names
