package names

import (
	"regexp"
	"strings"
)

var (
	countryPattern   = regexp.MustCompile(`\[([A-Z]{3})\]`)
	rangeSeedPattern = regexp.MustCompile(`\[\d/\d\]`)
	seedPattern      = regexp.MustCompile(`\[\d\]`)
	codePattern      = regexp.MustCompile(`\[[A-Z]+\]`)
)

// Country returns the three letter country code found in raw, e.g. "COL" for
// "[COL] ". Zero matches and more than one match both return "".
func Country(raw string) string {
	matches := countryPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) != 1 {
		return ""
	}
	return matches[0][1]
}

// RemoveSeeds strips "[n/m]" and "[n]" seeding annotations and trailing
// whitespace. Leading whitespace is kept.
func RemoveSeeds(name string) string {
	// "[n/m]" before "[n]".
	name = rangeSeedPattern.ReplaceAllString(name, "")
	name = seedPattern.ReplaceAllString(name, "")
	return strings.TrimRightFunc(name, isSpace)
}

// Clean strips seeds and bracketed country codes and trims both ends.
// Used for draw table cells where codes are interleaved with seeds.
func Clean(name string) string {
	name = rangeSeedPattern.ReplaceAllString(name, "")
	name = seedPattern.ReplaceAllString(name, "")
	name = codePattern.ReplaceAllString(name, "")
	return strings.TrimFunc(name, isSpace)
}

// isSpace matches the characters `\s` matches in the site's markup, which
// includes non-breaking spaces goquery decodes from &nbsp;.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v', '\u00a0':
		return true
	}
	return false
}
