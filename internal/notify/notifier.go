// Package notify defines the user-visible alert sink and the dedup id
// scheme that keeps repeated triggers from re-alerting within a day.
package notify

import (
	"fmt"

	"github.com/webtimed/webtimed/internal/util"
)

// Notification is a fire-and-forget user-visible alert. ID is a dedup key:
// the same (rule, day) pair always produces the same id, so a sink with its
// own already-shown tracking can layer beneath the engine's ledger check.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Notifier delivers notifications. Delivery failures are the sink's problem;
// the engine never retries.
type Notifier interface {
	Notify(n Notification)
}

// LimitID builds the dedup id for a limit-reached alert.
func LimitID(ruleKey, date string) string {
	return fmt.Sprintf("limit-%s-%s", ruleKey, date)
}

// GoalID builds the dedup id for a goal-achieved alert.
func GoalID(ruleKey, date string) string {
	return fmt.Sprintf("goal-%s-%s", ruleKey, date)
}

// SummaryID builds the dedup id for the daily summary.
func SummaryID(date string) string {
	return fmt.Sprintf("summary-%s", date)
}

// ChimeID builds the id for an hourly chime; chimes are never deduped.
func ChimeID(unixMillis int64) string {
	return fmt.Sprintf("chime-%d", unixMillis)
}

// LogNotifier writes notifications to the structured log. It stands in for a
// desktop notification daemon during development and in tests.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	util.LogInfof("notification %s: %s - %s", n.ID, n.Title, n.Message)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Sent []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.Sent = append(r.Sent, n)
}
