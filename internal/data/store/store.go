// Package store provides the durable key-value store backing all tracker
// state: whole-value reads and writes over a small set of named keys, plus a
// change subscription feed consumed by dashboards and the engine.
package store

// Named keys in the durable store. Each key holds one whole JSON value;
// writers always replace the full value so subscribers observe every change.
const (
	KeyStats          = "stats"
	KeyLimits         = "limits"
	KeyGoals          = "goals"
	KeyCategories     = "categories"
	KeyAutoCategories = "autoCategories"
	KeyNotifications  = "notifications"
	KeyAchievements   = "achievements"
	KeyFocusMode      = "focusMode"
)

// AllKeys lists every named key, in seeding order.
var AllKeys = []string{
	KeyStats,
	KeyLimits,
	KeyGoals,
	KeyCategories,
	KeyAutoCategories,
	KeyNotifications,
	KeyAchievements,
	KeyFocusMode,
}

// Store is the durable key-value contract. Get on a missing key is not an
// error; it leaves out at its zero value. Set persists the whole value
// before returning.
type Store interface {
	Get(key string, out interface{}) error
	Set(key string, value interface{}) error
	Reset() error
	Subscribe() <-chan string
	Close() error
}
