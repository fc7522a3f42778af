package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webtimed/webtimed/internal/core/category"
	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
)

func emptyResolver() *category.Resolver {
	return category.NewResolver(model.CategoryMap{}, model.CategoryMap{})
}

func TestEvaluateLimitTransitions(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		limit    int64
		used     int64
		expected *model.Status
	}{
		{
			name:     "plenty of time left",
			limit:    600,
			used:     30,
			expected: nil,
		},
		{
			name:     "inside the warning window",
			limit:    60,
			used:     55,
			expected: &model.Status{Type: model.StatusWarning, TimeLeftMinutes: 1},
		},
		{
			name:     "exactly at the limit",
			limit:    60,
			used:     60,
			expected: &model.Status{Type: model.StatusBlocked},
		},
		{
			name:     "past the limit",
			limit:    60,
			used:     90,
			expected: &model.Status{Type: model.StatusBlocked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := model.RuleSet{"a.com": tt.limit}
			day := model.DayStats{"a.com": tt.used}
			status := Evaluate("a.com", day, limits, model.FocusSession{}, emptyResolver(), now)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestEvaluateWarningMinutesRoundUp(t *testing.T) {
	limits := model.RuleSet{"a.com": 300}
	now := time.Now()

	// 299 seconds left rounds up to 5 minutes.
	status := Evaluate("a.com", model.DayStats{"a.com": 1}, limits, model.FocusSession{}, emptyResolver(), now)
	require.NotNil(t, status)
	assert.Equal(t, model.StatusWarning, status.Type)
	assert.Equal(t, 5, status.TimeLeftMinutes)
}

func TestEvaluateAggregatesAcrossSubdomains(t *testing.T) {
	limits := model.RuleSet{"google.com": 60}
	day := model.DayStats{
		"mail.google.com": 40,
		"docs.google.com": 30,
		"other.com":       1000,
	}
	now := time.Now()

	status := Evaluate("mail.google.com", day, limits, model.FocusSession{}, emptyResolver(), now)
	require.NotNil(t, status)
	assert.Equal(t, model.StatusBlocked, status.Type)

	// other.com never matches the google.com rule.
	assert.Nil(t, Evaluate("other.com", day, limits, model.FocusSession{}, emptyResolver(), now))
}

func TestEvaluateFocusModePrecedence(t *testing.T) {
	now := time.Now()
	focus := model.FocusSession{Active: true, EndTime: now.Add(10 * time.Minute).UnixMilli()}

	// Neutral domain blocked even with no limit configured at all.
	status := Evaluate("randomsite.com", model.DayStats{}, model.RuleSet{}, focus, emptyResolver(), now)
	require.NotNil(t, status)
	assert.Equal(t, model.StatusFocusBlocked, status.Type)

	// Productivity domains pass through to the limit checks.
	assert.Nil(t, Evaluate("github.com", model.DayStats{}, model.RuleSet{}, focus, emptyResolver(), now))
}

func TestEvaluateExpiredFocusSession(t *testing.T) {
	now := time.Now()
	// Stale active flag with a past end time must not block.
	focus := model.FocusSession{Active: true, EndTime: now.Add(-time.Minute).UnixMilli()}

	assert.Nil(t, Evaluate("randomsite.com", model.DayStats{}, model.RuleSet{}, focus, emptyResolver(), now))
}

func TestEvaluateFocusBeatsLimit(t *testing.T) {
	now := time.Now()
	focus := model.FocusSession{Active: true, EndTime: now.Add(time.Minute).UnixMilli()}
	limits := model.RuleSet{"a.com": 60}
	day := model.DayStats{"a.com": 100}

	status := Evaluate("a.com", day, limits, focus, emptyResolver(), now)
	require.NotNil(t, status)
	assert.Equal(t, model.StatusFocusBlocked, status.Type)
}

func TestEvaluateEmptyDomainAllowed(t *testing.T) {
	assert.Nil(t, Evaluate("", model.DayStats{}, model.RuleSet{"a.com": 1}, model.FocusSession{}, emptyResolver(), time.Now()))
}

func TestStatusFromStore(t *testing.T) {
	eng, st, clock, _ := newTestEngine(t)
	st.mustSet(t, store.KeyLimits, model.RuleSet{"a.com": 60})
	st.mustSet(t, store.KeyStats, model.Stats{todayKey(clock): {"sub.a.com": 60}})

	status, err := eng.Status("https://a.com/page")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, model.StatusBlocked, status.Type)

	status, err = eng.Status("https://unrelated.com")
	require.NoError(t, err)
	assert.Nil(t, status)

	status, err = eng.Status("not a url")
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestSiteTimeBidirectional(t *testing.T) {
	eng, st, clock, _ := newTestEngine(t)
	st.mustSet(t, store.KeyStats, model.Stats{todayKey(clock): {
		"google.com":      10,
		"mail.google.com": 20,
		"other.com":       40,
	}})

	// Querying a subdomain also counts its parents, and vice versa.
	resp, err := eng.SiteTime("https://mail.google.com/inbox")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "mail.google.com", resp.Domain)
	assert.Equal(t, int64(30), resp.Seconds)

	resp, err = eng.SiteTime("https://google.com")
	require.NoError(t, err)
	assert.Equal(t, int64(30), resp.Seconds)
}
