// Package engine implements the time-accounting core: it folds browser
// tab-focus events into per-domain daily durations, fires limit and goal
// side effects as thresholds are crossed, and answers status queries for
// page-level enforcement.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/webtimed/webtimed/internal/core/category"
	"github.com/webtimed/webtimed/internal/core/domain"
	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/notify"
	"github.com/webtimed/webtimed/internal/util"
)

const (
	// FlushInterval is the safety-net cadence for accrual flushes between
	// tab events.
	FlushInterval = 30 * time.Second

	// DefaultRetentionDays bounds how far back daily stats are kept.
	DefaultRetentionDays = 90

	// SummaryHour is the local hour at which the daily summary fires.
	SummaryHour = 22

	// Warning threshold for remaining limit time, in seconds.
	warningWindowSeconds = 300

	// Daily summaries are suppressed below this much tracked time.
	summaryMinSeconds = 60
)

// Config carries engine construction options.
type Config struct {
	RetentionDays int
	// Now overrides the clock, for tests. Defaults to the global time
	// provider.
	Now func() time.Time
}

// Engine is the single writer of stats, the notification ledger and the
// achievement log. Every mutation runs under one mutex so overlapping
// triggers (a timer tick racing a tab switch) serialize instead of
// double-counting or losing a delta.
type Engine struct {
	store         store.Store
	notifier      notify.Notifier
	tp            *util.TimeProvider
	now           func() time.Time
	retentionDays int

	mu  sync.Mutex
	ctx ActiveContext
}

// New creates an engine over the given store and notification sink.
func New(st store.Store, notifier notify.Notifier, cfg Config) *Engine {
	tp := util.GetTimeProvider()

	retention := cfg.RetentionDays
	if retention <= 0 {
		retention = DefaultRetentionDays
	}

	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = tp.Now
	}

	return &Engine{
		store:         st,
		notifier:      notifier,
		tp:            tp,
		now:           nowFn,
		retentionDays: retention,
	}
}

// Context returns a snapshot of the active context.
func (e *Engine) Context() ActiveContext {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx
}

// OnTabActivated handles a tab activation: flush the outgoing domain, then
// switch tracking to the new tab's domain.
func (e *Engine) OnTabActivated(tabID int, rawURL string) {
	e.onTabActivatedAt(e.now(), tabID, rawURL)
}

func (e *Engine) onTabActivatedAt(now time.Time, tabID int, rawURL string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.flushLocked(now)

	e.ctx.TabID = tabID
	e.ctx.Domain = domain.Normalize(rawURL)
	e.ctx.LastUpdate = now
	util.LogDebugf("tab %d activated, tracking %q", tabID, e.ctx.Domain)
}

// OnTabUpdated handles an in-tab navigation. Only the currently tracked tab
// matters; URL changes elsewhere do not touch the clock.
func (e *Engine) OnTabUpdated(tabID int, rawURL string) {
	e.onTabUpdatedAt(e.now(), tabID, rawURL)
}

func (e *Engine) onTabUpdatedAt(now time.Time, tabID int, rawURL string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tabID != e.ctx.TabID || rawURL == "" {
		return
	}

	e.flushLocked(now)

	e.ctx.Domain = domain.Normalize(rawURL)
	e.ctx.LastUpdate = now
	util.LogDebugf("tab %d navigated, tracking %q", tabID, e.ctx.Domain)
}

// OnIdleStateChanged handles system idle transitions. Going idle or locked
// flushes and stops tracking; returning to active restarts the clock without
// accruing the away time.
func (e *Engine) OnIdleStateChanged(state string) {
	e.onIdleStateChangedAt(e.now(), state)
}

func (e *Engine) onIdleStateChangedAt(now time.Time, state string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if state == model.IdleStateActive {
		e.ctx.LastUpdate = now
		return
	}

	e.flushLocked(now)
	e.ctx.Domain = ""
	util.LogDebugf("idle state %s, tracking stopped", state)
}

// Tick is the periodic safety-net flush.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flushLocked(e.now())
}

// flushLocked accrues elapsed whole seconds for the tracked domain and runs
// the limit and goal side effects. Callers hold e.mu.
//
// Commit order matters: the delta is merged into a copy, the copy is
// persisted, and only on a confirmed write does LastUpdate advance. A failed
// write leaves the delta to be retried by the next trigger.
func (e *Engine) flushLocked(now time.Time) {
	if !e.ctx.Tracking() {
		return
	}

	delta := int64(now.Sub(e.ctx.LastUpdate) / time.Second)
	if delta < 1 {
		// Sub-second remainders are dropped, not carried over.
		return
	}

	today := e.tp.DateKey(now)

	stats := model.Stats{}
	if err := e.store.Get(store.KeyStats, &stats); err != nil {
		util.LogErrorf("flush: failed to load stats: %v", err)
		return
	}

	stats.Add(today, e.ctx.Domain, delta)
	util.LogDebugf("accrued %ds for %s, total %ds today", delta, e.ctx.Domain, stats[today][e.ctx.Domain])

	ledger, ledgerChanged := e.checkLimit(today, stats.Day(today))
	achievements, achievementsChanged := e.checkGoal(today, stats.Day(today))

	if err := e.store.Set(store.KeyStats, stats); err != nil {
		util.LogErrorf("flush: failed to persist stats, delta retained: %v", err)
		return
	}
	e.ctx.LastUpdate = now

	// Failures past this point only risk a duplicate notification; the
	// dedup ids stay stable so the sink can still suppress repeats.
	if ledgerChanged {
		if err := e.store.Set(store.KeyNotifications, ledger); err != nil {
			util.LogErrorf("flush: failed to persist notification ledger: %v", err)
		}
	}
	if achievementsChanged {
		if err := e.store.Set(store.KeyAchievements, achievements); err != nil {
			util.LogErrorf("flush: failed to persist achievements: %v", err)
		}
	}
}

// checkLimit emits the once-per-day limit notification when aggregate usage
// for the matched rule crosses its threshold.
func (e *Engine) checkLimit(today string, day model.DayStats) (model.NotificationLedger, bool) {
	limits := model.RuleSet{}
	if err := e.store.Get(store.KeyLimits, &limits); err != nil {
		util.LogErrorf("flush: failed to load limits: %v", err)
		return nil, false
	}

	key := domain.MatchRule(e.ctx.Domain, limits)
	if key == "" {
		return nil, false
	}

	used := domain.AggregateUsage(key, day)
	if used < limits[key] {
		return nil, false
	}

	ledger := model.NotificationLedger{}
	if err := e.store.Get(store.KeyNotifications, &ledger); err != nil {
		util.LogErrorf("flush: failed to load notification ledger: %v", err)
		return nil, false
	}
	if ledger[key] == today {
		return nil, false
	}

	e.notifier.Notify(notify.Notification{
		ID:      notify.LimitID(key, today),
		Title:   "Daily time limit reached",
		Message: fmt.Sprintf("You have used your daily allowance for %s and related sites (%s).", key, util.FormatSeconds(used)),
	})

	ledger[key] = today
	return ledger, true
}

// checkGoal appends a one-time-per-day achievement when aggregate usage for
// a matched goal first reaches its threshold.
func (e *Engine) checkGoal(today string, day model.DayStats) (model.AchievementLog, bool) {
	goals := model.RuleSet{}
	if err := e.store.Get(store.KeyGoals, &goals); err != nil {
		util.LogErrorf("flush: failed to load goals: %v", err)
		return nil, false
	}

	key := domain.MatchRule(e.ctx.Domain, goals)
	if key == "" {
		return nil, false
	}

	used := domain.AggregateUsage(key, day)
	if used < goals[key] {
		return nil, false
	}

	achievements := model.AchievementLog{}
	if err := e.store.Get(store.KeyAchievements, &achievements); err != nil {
		util.LogErrorf("flush: failed to load achievements: %v", err)
		return nil, false
	}
	if achievements.Contains(key, today) {
		return nil, false
	}

	goalMinutes := int((goals[key] + 59) / 60)
	achievements = append(achievements, model.AchievementRecord{
		Domain:      key,
		Date:        today,
		GoalMinutes: goalMinutes,
	})

	e.notifier.Notify(notify.Notification{
		ID:      notify.GoalID(key, today),
		Title:   "Goal achieved!",
		Message: fmt.Sprintf("You reached your %d-minute goal on %s today. Keep it up!", goalMinutes, key),
	})

	return achievements, true
}

// resolver builds a category resolver from the current override and auto
// cache layers.
func (e *Engine) resolver() (*category.Resolver, error) {
	overrides := model.CategoryMap{}
	if err := e.store.Get(store.KeyCategories, &overrides); err != nil {
		return nil, err
	}
	auto := model.CategoryMap{}
	if err := e.store.Get(store.KeyAutoCategories, &auto); err != nil {
		return nil, err
	}
	return category.NewResolver(overrides, auto), nil
}

// ClassifyPage runs the heuristic metadata classifier for a page and caches
// a confident verdict in the auto-category layer. Abstentions change
// nothing. This is the enrichment path; it never runs inside a flush.
func (e *Engine) ClassifyPage(rawURL string, meta model.PageMetadata) *model.Classification {
	d := domain.Normalize(rawURL)
	if d == "" {
		return nil
	}

	result := category.ClassifyMetadata(d, meta)
	if result == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	auto := model.CategoryMap{}
	if err := e.store.Get(store.KeyAutoCategories, &auto); err != nil {
		util.LogErrorf("classify: failed to load auto categories: %v", err)
		return result
	}
	auto[d] = result.Category
	if err := e.store.Set(store.KeyAutoCategories, auto); err != nil {
		util.LogErrorf("classify: failed to persist auto categories: %v", err)
	}
	return result
}
