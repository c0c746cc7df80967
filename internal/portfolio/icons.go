package portfolio

import "strings"

// DefaultIconBaseURL serves brand icons keyed by slug.
const DefaultIconBaseURL = "https://cdn.simpleicons.org"

// IconURL returns the icon endpoint for slug under base.
func IconURL(base, slug string) string {
	if base == "" {
		base = DefaultIconBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + slug
}
