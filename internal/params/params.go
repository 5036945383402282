// Package params reads query parameters out of the relative links found on
// tournament pages, e.g. "player.aspx?id=...&player=229".
package params

import (
	"net/url"
	"strings"
)

// Values maps a parameter name to its values in order of appearance.
type Values map[string][]string

// Get returns the query parameters of rawURL. Repeated keys append to the
// value list and blank values are dropped. Get never fails: a URL without a
// query, or one that cannot be parsed at all, yields an empty Values.
func Get(rawURL string) Values {
	query := ""
	if u, err := url.Parse(rawURL); err == nil {
		query = u.RawQuery
	} else if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		query = rawURL[i+1:]
		if j := strings.IndexByte(query, '#'); j >= 0 {
			query = query[:j]
		}
	}

	values := make(Values)
	for _, pair := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(pair, "=")
		key, errKey := url.QueryUnescape(key)
		value, errValue := url.QueryUnescape(value)
		if errKey != nil || errValue != nil || key == "" || value == "" {
			continue
		}
		values[key] = append(values[key], value)
	}
	return values
}

// First returns the first value of key, or "" when absent.
func (v Values) First(key string) string {
	if vs := v[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}
