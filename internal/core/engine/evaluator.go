package engine

import (
	"time"

	"github.com/webtimed/webtimed/internal/core/category"
	"github.com/webtimed/webtimed/internal/core/domain"
	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
)

// Evaluate decides what should happen on a page right now. It is pure given
// its inputs so any caller can re-derive the same answer from the durable
// store without shared evaluator state.
//
// Check order: an in-effect focus session blocks every non-Productivity
// domain; otherwise a matched limit blocks at zero remaining and warns
// inside the final five minutes; otherwise the page is allowed (nil).
func Evaluate(d string, day model.DayStats, limits model.RuleSet, focus model.FocusSession, resolver *category.Resolver, now time.Time) *model.Status {
	if d == "" {
		return nil
	}

	if focus.ActiveAt(now) {
		if resolver.Resolve(d) != model.CategoryProductivity {
			return &model.Status{Type: model.StatusFocusBlocked}
		}
	}

	key := domain.MatchRule(d, limits)
	if key != "" {
		used := domain.AggregateUsage(key, day)
		remaining := limits[key] - used

		if remaining <= 0 {
			return &model.Status{Type: model.StatusBlocked}
		}
		if remaining <= warningWindowSeconds {
			minutes := int((remaining + 59) / 60)
			return &model.Status{Type: model.StatusWarning, TimeLeftMinutes: minutes}
		}
	}

	return nil
}

// Status evaluates the current enforcement decision for a URL against the
// durable store. Readers run concurrently with flushes and may observe a
// slightly stale total; they never block the writer.
func (e *Engine) Status(rawURL string) (*model.Status, error) {
	d := domain.Normalize(rawURL)
	if d == "" {
		return nil, nil
	}

	now := e.now()
	today := e.tp.DateKey(now)

	stats := model.Stats{}
	if err := e.store.Get(store.KeyStats, &stats); err != nil {
		return nil, err
	}
	limits := model.RuleSet{}
	if err := e.store.Get(store.KeyLimits, &limits); err != nil {
		return nil, err
	}
	focus := model.FocusSession{}
	if err := e.store.Get(store.KeyFocusMode, &focus); err != nil {
		return nil, err
	}
	resolver, err := e.resolver()
	if err != nil {
		return nil, err
	}

	return Evaluate(d, stats.Day(today), limits, focus, resolver, now), nil
}

// SiteTime reports today's aggregate seconds for the URL's domain family,
// counting both subdomains and superdomains.
func (e *Engine) SiteTime(rawURL string) (*model.SiteTimeResponse, error) {
	d := domain.Normalize(rawURL)
	if d == "" {
		return nil, nil
	}

	today := e.tp.DateKey(e.now())
	stats := model.Stats{}
	if err := e.store.Get(store.KeyStats, &stats); err != nil {
		return nil, err
	}

	return &model.SiteTimeResponse{
		Seconds: domain.SiteTime(d, stats.Day(today)),
		Domain:  d,
	}, nil
}
