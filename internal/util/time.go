package util

import (
	"fmt"
	"sync"
	"time"
)

// DateKeyLayout is the fixed-width layout for per-day bucket keys.
// Zero-padded and fixed-width, so lexical comparison matches chronological
// comparison.
const DateKeyLayout = "2006-01-02"

// TimeProvider is a global time utility that handles timezone-aware time operations
type TimeProvider struct {
	location *time.Location
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	mu                 sync.Mutex
)

// InitializeTimeProvider initializes the global time provider with the specified timezone
func InitializeTimeProvider(timezone string) error {
	mu.Lock()
	defer mu.Unlock()

	provider := &TimeProvider{}
	if err := provider.SetTimezone(timezone); err != nil {
		return err
	}

	globalTimeProvider = provider
	return nil
}

// GetTimeProvider returns the global time provider instance
// If not initialized, it defaults to Local timezone
func GetTimeProvider() *TimeProvider {
	if globalTimeProvider == nil {
		InitializeTimeProvider("Local")
	}
	return globalTimeProvider
}

// SetTimezone updates the timezone for the time provider
func (tp *TimeProvider) SetTimezone(timezone string) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Shanghai, Europe/London", timezone, err)
		}
		loc = l
	}
	tp.location = loc
	return nil
}

// Now returns the current time in the configured timezone
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return time.Now().In(tp.location)
}

// In converts a time to the configured timezone
func (tp *TimeProvider) In(t time.Time) time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location)
}

// DateKey returns the calendar-day bucket key for t in the configured timezone.
func (tp *TimeProvider) DateKey(t time.Time) string {
	return tp.In(t).Format(DateKeyLayout)
}

// TodayKey returns the bucket key for the current calendar day.
func (tp *TimeProvider) TodayKey() string {
	return tp.DateKey(time.Now())
}

// DateKeyBefore returns the bucket key for the day `days` before t.
func (tp *TimeProvider) DateKeyBefore(t time.Time, days int) string {
	return tp.In(t).AddDate(0, 0, -days).Format(DateKeyLayout)
}

// NextClockTime returns the next occurrence of hour:minute after t in the
// configured timezone. If the time today is already past, the occurrence on
// the following day is returned.
func (tp *TimeProvider) NextClockTime(t time.Time, hour, minute int) time.Time {
	local := tp.In(t)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, local.Location())
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// NextHourTop returns the next top-of-the-hour after t. Built from the local
// clock fields rather than Truncate, which works in absolute time and lands
// off the hour in zones with fractional UTC offsets.
func (tp *TimeProvider) NextHourTop(t time.Time) time.Time {
	local := tp.In(t)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour()+1, 0, 0, 0, local.Location())
}
