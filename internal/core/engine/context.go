package engine

import "time"

// ActiveContext tracks which domain is currently open and when its accrual
// was last flushed. It is process-lifetime state, never persisted; on daemon
// restart it is reseeded from the first activation event on the stream.
type ActiveContext struct {
	TabID      int
	Domain     string
	LastUpdate time.Time
}

// Tracking reports whether the context points at an accruable domain.
func (c ActiveContext) Tracking() bool {
	return c.Domain != ""
}
