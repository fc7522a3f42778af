package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/notify"
)

func TestSummarize(t *testing.T) {
	eng, st, clock, _ := newTestEngine(t)
	today := todayKey(clock)

	st.mustSet(t, store.KeyStats, model.Stats{today: {
		"github.com":  3600, // builtin Productivity
		"youtube.com": 1200,
		"unknown.com": 1200,
		"tiny.com":    100,
	}})
	st.mustSet(t, store.KeyAchievements, model.AchievementLog{
		{Domain: "github.com", Date: today, GoalMinutes: 60},
		{Domain: "github.com", Date: "2024-03-15", GoalMinutes: 30},
	})

	summary, err := eng.Summarize(today)
	require.NoError(t, err)

	assert.Equal(t, today, summary.Date)
	assert.Equal(t, int64(6100), summary.TotalSeconds)
	// 3600 productive of 6100 total, integer division.
	assert.Equal(t, 59, summary.ProductivityScore)
	assert.Equal(t, 1, summary.Achievements)

	require.Len(t, summary.TopDomains, 3)
	assert.Equal(t, DomainUse{Domain: "github.com", Seconds: 3600}, summary.TopDomains[0])
	// Ties break alphabetically.
	assert.Equal(t, "unknown.com", summary.TopDomains[1].Domain)
	assert.Equal(t, "youtube.com", summary.TopDomains[2].Domain)
}

func TestSummarizeEmptyDay(t *testing.T) {
	eng, _, _, _ := newTestEngine(t)

	summary, err := eng.Summarize("2024-04-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalSeconds)
	assert.Equal(t, 0, summary.ProductivityScore)
	assert.Empty(t, summary.TopDomains)
}

func TestEmitDailySummary(t *testing.T) {
	eng, st, clock, recorder := newTestEngine(t)
	st.mustSet(t, store.KeyStats, model.Stats{todayKey(clock): {
		"github.com": 3000,
	}})

	eng.EmitDailySummary()

	require.Len(t, recorder.Sent, 1)
	sent := recorder.Sent[0]
	assert.Equal(t, notify.SummaryID(todayKey(clock)), sent.ID)
	assert.Contains(t, sent.Message, "50m")
	assert.Contains(t, sent.Message, "100%")
	assert.Contains(t, sent.Message, "github.com")
}

func TestEmitDailySummaryIncludesPendingTime(t *testing.T) {
	eng, st, clock, recorder := newTestEngine(t)
	st.mustSet(t, store.KeyStats, model.Stats{todayKey(clock): {"a.com": 50}})

	// 20 seconds still accruing on the active tab count toward the summary.
	eng.OnTabActivated(1, "https://a.com")
	clock.Advance(20 * time.Second)
	eng.EmitDailySummary()

	require.Len(t, recorder.Sent, 1)
	assert.Contains(t, recorder.Sent[0].Message, "1m 10s")
}

func TestEmitDailySummarySkipsQuietDay(t *testing.T) {
	eng, st, clock, recorder := newTestEngine(t)
	st.mustSet(t, store.KeyStats, model.Stats{todayKey(clock): {"a.com": 59}})

	eng.EmitDailySummary()

	assert.Empty(t, recorder.Sent)
}

func TestChime(t *testing.T) {
	eng, _, clock, recorder := newTestEngine(t)

	eng.Chime() // clock is at noon
	require.Len(t, recorder.Sent, 1)
	assert.Equal(t, "Hourly chime", recorder.Sent[0].Title)

	clock.Advance(11 * time.Hour) // 23:00
	eng.Chime()
	require.Len(t, recorder.Sent, 2)
	assert.Equal(t, "Late night reminder", recorder.Sent[1].Title)
}
