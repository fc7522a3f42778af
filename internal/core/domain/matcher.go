package domain

import (
	"github.com/webtimed/webtimed/internal/core/model"
)

// MatchRule finds the most specific rule key applying to domain. An exact
// key wins outright; otherwise the longest key that domain is a subdomain of
// wins, since longer keys scope tighter (mail.google.com beats google.com).
// Returns "" when nothing matches. Must not depend on map iteration order.
func MatchRule(domain string, rules model.RuleSet) string {
	if domain == "" {
		return ""
	}
	if _, ok := rules[domain]; ok {
		return domain
	}

	best := ""
	for key := range rules {
		if MatchesKey(domain, key) && len(key) > len(best) {
			best = key
		}
	}
	return best
}

// AggregateUsage sums the day's accumulated seconds over every domain that
// falls under the rule key, so a rule on google.com counts mail.google.com
// and docs.google.com together.
func AggregateUsage(key string, day model.DayStats) int64 {
	var used int64
	for statDomain, seconds := range day {
		if MatchesKey(statDomain, key) {
			used += seconds
		}
	}
	return used
}

// SiteTime sums the day's seconds over every domain related to the query in
// either direction, covering both subdomains and superdomains.
func SiteTime(domain string, day model.DayStats) int64 {
	var total int64
	for statDomain, seconds := range day {
		if Related(statDomain, domain) {
			total += seconds
		}
	}
	return total
}
