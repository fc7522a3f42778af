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

func TestSweepDropsExpiredDays(t *testing.T) {
	eng, st, _, _ := newTestEngine(t) // clock fixed at 2024-04-01

	st.mustSet(t, store.KeyStats, model.Stats{
		"2023-12-01": {"old.com": 100},
		"2024-01-15": {"recent.com": 200},
		"2024-04-01": {"today.com": 300},
	})

	removed, err := eng.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	stats := st.stats(t)
	assert.NotContains(t, stats, "2023-12-01")
	assert.Contains(t, stats, "2024-01-15")
	assert.Contains(t, stats, "2024-04-01")
}

func TestSweepBoundaryIsExclusive(t *testing.T) {
	eng, st, clock, _ := newTestEngine(t)

	cutoff := eng.tp.DateKeyBefore(clock.now, eng.retentionDays)
	st.mustSet(t, store.KeyStats, model.Stats{
		cutoff: {"edge.com": 10},
	})

	// A bucket exactly at the cutoff survives; only strictly older go.
	removed, err := eng.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Contains(t, st.stats(t), cutoff)
}

func TestSweepNothingToRemoveSkipsWrite(t *testing.T) {
	eng, st, clock, _ := newTestEngine(t)
	st.mustSet(t, store.KeyStats, model.Stats{todayKey(clock): {"a.com": 5}})
	before := st.setCount[store.KeyStats]

	removed, err := eng.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, before, st.setCount[store.KeyStats])
}

func TestSweepCustomRetention(t *testing.T) {
	st := newMemStore()
	clock := &testClock{now: time.Date(2024, 4, 1, 12, 0, 0, 0, time.Local)}
	eng := New(st, &notify.Recorder{}, Config{RetentionDays: 7, Now: clock.Now})

	st.mustSet(t, store.KeyStats, model.Stats{
		"2024-03-20": {"old.com": 1}, // 12 days before 2024-04-01
		"2024-03-28": {"kept.com": 1},
	})

	removed, err := eng.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NotContains(t, st.stats(t), "2024-03-20")
	assert.Contains(t, st.stats(t), "2024-03-28")
}
