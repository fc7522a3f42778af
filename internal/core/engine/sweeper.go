package engine

import (
	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/util"
)

// Sweep drops every stats bucket strictly older than the retention window.
// Date keys are zero-padded fixed-width, so the age comparison is lexical.
// Runs on daemon start and once per day after that.
func (e *Engine) Sweep() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := e.tp.DateKeyBefore(e.now(), e.retentionDays)

	stats := model.Stats{}
	if err := e.store.Get(store.KeyStats, &stats); err != nil {
		return 0, err
	}

	removed := 0
	for date := range stats {
		if date < cutoff {
			delete(stats, date)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	if err := e.store.Set(store.KeyStats, stats); err != nil {
		return 0, err
	}
	util.LogInfof("retention sweep removed %d day(s) before %s", removed, cutoff)
	return removed, nil
}
