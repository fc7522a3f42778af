package model

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
)

// Category is the classification bucket for a domain.
type Category string

const (
	CategoryProductivity  Category = "Productivity"
	CategoryEntertainment Category = "Entertainment"
	CategoryNeutral       Category = "Neutral"
)

// ParseCategory validates a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryProductivity, CategoryEntertainment, CategoryNeutral:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q (expected Productivity, Entertainment or Neutral)", s)
}

// DayStats maps domain to accumulated seconds for a single calendar day.
type DayStats map[string]int64

// Total returns the summed seconds across all domains for the day.
func (d DayStats) Total() int64 {
	var total int64
	for _, seconds := range d {
		total += seconds
	}
	return total
}

// Stats maps date key (YYYY-MM-DD) to per-domain accumulated seconds.
// Owned by the accrual engine; all other components read it.
type Stats map[string]DayStats

// Add accumulates seconds for a (date, domain) pair, creating the day bucket
// lazily on first accrual.
func (s Stats) Add(date, domain string, seconds int64) {
	day, ok := s[date]
	if !ok {
		day = make(DayStats)
		s[date] = day
	}
	day[domain] += seconds
}

// Day returns the bucket for a date, which may be nil.
func (s Stats) Day(date string) DayStats {
	return s[date]
}

// RuleSet maps a domain key to a threshold in seconds. A key applies to the
// domain itself and to all of its subdomains.
type RuleSet map[string]int64

// CategoryMap maps a domain key to a category, with the same subdomain
// semantics as RuleSet for user overrides and the builtin dictionary.
type CategoryMap map[string]Category

// NotificationLedger maps a rule key to the last date key on which a
// limit-reached notification was emitted for it.
type NotificationLedger map[string]string

// AchievementRecord marks the first time a goal was satisfied for a domain
// on a given day.
type AchievementRecord struct {
	Domain      string `json:"domain"`
	Date        string `json:"date"`
	GoalMinutes int    `json:"goalMinutes"`
}

// AchievementLog is the append-only sequence of achievement records.
type AchievementLog []AchievementRecord

// Contains reports whether a (domain, date) achievement already exists.
func (l AchievementLog) Contains(domain, date string) bool {
	for _, rec := range l {
		if rec.Domain == domain && rec.Date == date {
			return true
		}
	}
	return false
}

// CountForDay returns the number of achievements unlocked on a date.
func (l AchievementLog) CountForDay(date string) int {
	count := 0
	for _, rec := range l {
		if rec.Date == date {
			count++
		}
	}
	return count
}

// FocusSession is a time-boxed session during which only Productivity
// domains are accessible.
type FocusSession struct {
	Active  bool  `json:"active"`
	EndTime int64 `json:"endTime,omitempty"` // unix milliseconds, 0 when unset
}

// ActiveAt derives whether the session is in effect at the given instant.
// A stale Active flag past EndTime counts as expired.
func (f FocusSession) ActiveAt(now time.Time) bool {
	return f.Active && f.EndTime > now.UnixMilli()
}

// StatusType enumerates enforcement decisions for the active page.
type StatusType string

const (
	StatusBlocked      StatusType = "BLOCKED"
	StatusFocusBlocked StatusType = "FOCUS_BLOCKED"
	StatusWarning      StatusType = "WARNING"
)

// Status is the enforcement decision for a page. A nil *Status means the
// page is allowed.
type Status struct {
	Type            StatusType `json:"type"`
	TimeLeftMinutes int        `json:"timeLeftMinutes,omitempty"`
}

// PageMetadata carries the free-text signals scraped from a page, used by
// the heuristic classifier.
type PageMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	OGType      string `json:"ogType"`
}

// Classification is a heuristic classifier verdict.
type Classification struct {
	Category   Category `json:"category"`
	Confidence int      `json:"confidence"` // 0-100
	Source     string   `json:"source"`
}

// EventTime accepts either unix milliseconds or an RFC3339 string on the
// wire, since event producers disagree on timestamp encoding.
type EventTime struct {
	time.Time
}

func (et *EventTime) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := sonic.Unmarshal(data, &millis); err == nil {
		et.Time = time.UnixMilli(millis)
		return nil
	}

	var str string
	if err := sonic.Unmarshal(data, &str); err == nil {
		parsed, perr := time.Parse(time.RFC3339, str)
		if perr != nil {
			return fmt.Errorf("timestamp must be unix milliseconds or RFC3339: %w", perr)
		}
		et.Time = parsed
		return nil
	}

	return fmt.Errorf("timestamp must be a number or string")
}

func (et EventTime) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(et.Time.UnixMilli())
}
