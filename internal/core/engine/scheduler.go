package engine

import (
	"context"
	"time"

	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/util"
)

const sweepInterval = 24 * time.Hour

// RunOptions configures the trigger loop.
type RunOptions struct {
	// Chime enables the hourly chime notifications.
	Chime bool
}

// Run drives the engine from the tab event stream and the periodic timers:
// the 30-second safety-net flush, the daily retention sweep, the 22:00
// summary, and the optional hourly chime. All triggers funnel into the
// engine's handlers, which serialize on its mutex; a slow flush delays the
// next trigger rather than overlapping it. Run blocks until ctx is
// cancelled or the event stream closes, flushing once more on the way out.
func (e *Engine) Run(ctx context.Context, events <-chan model.TabEvent, opts RunOptions) {
	if _, err := e.Sweep(); err != nil {
		util.LogErrorf("startup retention sweep failed: %v", err)
	}

	flushTicker := time.NewTicker(FlushInterval)
	defer flushTicker.Stop()

	sweepTicker := time.NewTicker(sweepInterval)
	defer sweepTicker.Stop()

	now := e.now()
	summaryTimer := time.NewTimer(e.tp.NextClockTime(now, SummaryHour, 0).Sub(now))
	defer summaryTimer.Stop()

	var chimeCh <-chan time.Time
	var chimeTimer *time.Timer
	if opts.Chime {
		chimeTimer = time.NewTimer(e.tp.NextHourTop(now).Sub(now))
		defer chimeTimer.Stop()
		chimeCh = chimeTimer.C
	}

	for {
		select {
		case <-ctx.Done():
			e.Tick()
			return

		case ev, ok := <-events:
			if !ok {
				e.Tick()
				return
			}
			e.handleEvent(ev)

		case <-flushTicker.C:
			e.Tick()

		case <-sweepTicker.C:
			if _, err := e.Sweep(); err != nil {
				util.LogErrorf("retention sweep failed: %v", err)
			}

		case <-summaryTimer.C:
			e.EmitDailySummary()
			now := e.now()
			summaryTimer.Reset(e.tp.NextClockTime(now, SummaryHour, 0).Sub(now))

		case <-chimeCh:
			e.Chime()
			now := e.now()
			chimeTimer.Reset(e.tp.NextHourTop(now).Sub(now))
		}
	}
}

// handleEvent dispatches one stream event. Events may carry their own
// timestamp; without one, receipt time is used.
func (e *Engine) handleEvent(ev model.TabEvent) {
	at := e.now()
	if ev.Timestamp != nil && !ev.Timestamp.IsZero() {
		at = ev.Timestamp.Time
	}

	switch ev.Type {
	case model.EventTabActivated:
		e.onTabActivatedAt(at, ev.TabID, ev.URL)
	case model.EventTabUpdated:
		e.onTabUpdatedAt(at, ev.TabID, ev.URL)
	case model.EventIdleChanged:
		e.onIdleStateChangedAt(at, ev.State)
	default:
		// Unknown event types are ignored, not fatal.
		util.LogDebugf("ignoring unknown event type %q", ev.Type)
	}
}
