package domain

import (
	"net/url"
	"strings"
)

// Normalize extracts a canonical domain from a raw URL string: the lowercase
// hostname with a leading "www." stripped. It returns "" when the URL cannot
// be parsed or has no hostname; callers must treat "" as "do not accrue, do
// not evaluate".
func Normalize(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "" {
		return ""
	}
	return strings.TrimPrefix(hostname, "www.")
}

// CleanInput canonicalizes a user-typed domain for use as a rule key:
// strips scheme, path, and a leading "www." prefix.
func CleanInput(input string) string {
	clean := strings.TrimSpace(input)
	if strings.Contains(clean, "http://") || strings.Contains(clean, "https://") {
		if parsed, err := url.Parse(clean); err == nil && parsed.Hostname() != "" {
			clean = parsed.Hostname()
		}
	} else if idx := strings.Index(clean, "/"); idx >= 0 {
		clean = clean[:idx]
	}
	clean = strings.ToLower(clean)
	return strings.TrimPrefix(clean, "www.")
}

// MatchesKey reports whether domain falls under a rule key: either an exact
// match or a subdomain of it.
func MatchesKey(domain, key string) bool {
	return domain == key || strings.HasSuffix(domain, "."+key)
}

// Related reports whether two domains are in the same suffix family in
// either direction (a.b.c relates to b.c and vice versa).
func Related(a, b string) bool {
	return MatchesKey(a, b) || MatchesKey(b, a)
}
