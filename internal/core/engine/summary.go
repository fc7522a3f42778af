package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/notify"
	"github.com/webtimed/webtimed/internal/util"
)

// DaySummary aggregates one day's tracked activity.
type DaySummary struct {
	Date              string      `json:"date"`
	TotalSeconds      int64       `json:"totalSeconds"`
	ProductivityScore int         `json:"productivityScore"` // 0-100
	TopDomains        []DomainUse `json:"topDomains"`
	Achievements      int         `json:"achievements"`
}

// DomainUse pairs a domain with its accumulated seconds.
type DomainUse struct {
	Domain  string `json:"domain"`
	Seconds int64  `json:"seconds"`
}

// Summarize builds the summary for the given date key.
func (e *Engine) Summarize(date string) (*DaySummary, error) {
	stats := model.Stats{}
	if err := e.store.Get(store.KeyStats, &stats); err != nil {
		return nil, err
	}
	achievements := model.AchievementLog{}
	if err := e.store.Get(store.KeyAchievements, &achievements); err != nil {
		return nil, err
	}
	resolver, err := e.resolver()
	if err != nil {
		return nil, err
	}

	day := stats.Day(date)
	total := day.Total()

	var productive int64
	uses := make([]DomainUse, 0, len(day))
	for d, seconds := range day {
		uses = append(uses, DomainUse{Domain: d, Seconds: seconds})
		if resolver.Resolve(d) == model.CategoryProductivity {
			productive += seconds
		}
	}
	sort.Slice(uses, func(i, j int) bool {
		if uses[i].Seconds != uses[j].Seconds {
			return uses[i].Seconds > uses[j].Seconds
		}
		return uses[i].Domain < uses[j].Domain
	})
	if len(uses) > 3 {
		uses = uses[:3]
	}

	score := 0
	if total > 0 {
		score = int(productive * 100 / total)
	}

	return &DaySummary{
		Date:              date,
		TotalSeconds:      total,
		ProductivityScore: score,
		TopDomains:        uses,
		Achievements:      achievements.CountForDay(date),
	}, nil
}

// EmitDailySummary flushes pending time and sends the end-of-day summary
// notification. Near-idle days (under a minute tracked) stay silent.
func (e *Engine) EmitDailySummary() {
	e.mu.Lock()
	now := e.now()
	e.flushLocked(now)
	e.mu.Unlock()

	date := e.tp.DateKey(now)
	summary, err := e.Summarize(date)
	if err != nil {
		util.LogErrorf("daily summary failed: %v", err)
		return
	}
	if summary.TotalSeconds < summaryMinSeconds {
		util.LogDebugf("daily summary skipped, only %ds tracked", summary.TotalSeconds)
		return
	}

	top := make([]string, 0, len(summary.TopDomains))
	for _, use := range summary.TopDomains {
		top = append(top, fmt.Sprintf("%s (%s)", use.Domain, util.FormatSeconds(use.Seconds)))
	}

	message := fmt.Sprintf("Tracked %s today, productivity score %s.",
		util.FormatSeconds(summary.TotalSeconds), util.FormatPercent(summary.ProductivityScore))
	if len(top) > 0 {
		message += " Top sites: " + strings.Join(top, ", ") + "."
	}
	if summary.Achievements > 0 {
		message += fmt.Sprintf(" Goals achieved: %d.", summary.Achievements)
	}

	e.notifier.Notify(notify.Notification{
		ID:      notify.SummaryID(date),
		Title:   "Your day in review",
		Message: message,
	})
}

// Chime emits the on-the-hour notification; between 23:00 and 05:00 it turns
// into a late-night rest reminder.
func (e *Engine) Chime() {
	now := e.tp.In(e.now())
	hour := now.Hour()

	title := "Hourly chime"
	message := fmt.Sprintf("It is now %d o'clock.", hour)
	if hour >= 23 || hour <= 5 {
		title = "Late night reminder"
		message = fmt.Sprintf("It is %d o'clock. Consider wrapping up and getting some rest.", hour)
	}

	e.notifier.Notify(notify.Notification{
		ID:      notify.ChimeID(now.UnixMilli()),
		Title:   title,
		Message: message,
	})
}
