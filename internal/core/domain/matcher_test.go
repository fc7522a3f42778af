package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webtimed/webtimed/internal/core/model"
)

func TestMatchRule(t *testing.T) {
	rules := model.RuleSet{
		"google.com":      3600,
		"mail.google.com": 600,
		"youtube.com":     1800,
	}

	tests := []struct {
		name     string
		domain   string
		expected string
	}{
		{"exact match", "youtube.com", "youtube.com"},
		{"exact beats suffix", "mail.google.com", "mail.google.com"},
		{"longest suffix wins", "inbox.mail.google.com", "mail.google.com"},
		{"plain suffix", "docs.google.com", "google.com"},
		{"no match", "example.com", ""},
		{"empty domain", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchRule(tt.domain, rules))
		})
	}
}

func TestMatchRuleEmptyRules(t *testing.T) {
	assert.Equal(t, "", MatchRule("a.com", model.RuleSet{}))
	assert.Equal(t, "", MatchRule("a.com", nil))
}

func TestAggregateUsage(t *testing.T) {
	day := model.DayStats{
		"google.com":      10,
		"mail.google.com": 40,
		"docs.google.com": 30,
		"other.com":       500,
	}

	assert.Equal(t, int64(80), AggregateUsage("google.com", day))
	assert.Equal(t, int64(40), AggregateUsage("mail.google.com", day))
	assert.Equal(t, int64(0), AggregateUsage("missing.com", day))
}

func TestSiteTime(t *testing.T) {
	day := model.DayStats{
		"google.com":      10,
		"mail.google.com": 20,
		"other.com":       500,
	}

	// Both directions count: the parent when querying a child, and children
	// when querying the parent.
	assert.Equal(t, int64(30), SiteTime("mail.google.com", day))
	assert.Equal(t, int64(30), SiteTime("google.com", day))
	assert.Equal(t, int64(0), SiteTime("missing.com", day))
}
