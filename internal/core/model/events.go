package model

// Idle states reported by the browser event source.
const (
	IdleStateActive = "active"
	IdleStateIdle   = "idle"
	IdleStateLocked = "locked"
)

// Tab event types on the stream.
const (
	EventTabActivated = "activated"
	EventTabUpdated   = "updated"
	EventIdleChanged  = "idle"
)

// TabEvent is a single browser focus event drained off the event stream.
type TabEvent struct {
	Type      string     `json:"type"`
	TabID     int        `json:"tabId,omitempty"`
	URL       string     `json:"url,omitempty"`
	State     string     `json:"state,omitempty"`
	Timestamp *EventTime `json:"timestamp,omitempty"`
}

// Query message types accepted on the control socket.
const (
	MessageGetStatus    = "GET_STATUS"
	MessageGetSiteTime  = "GET_SITE_TIME"
	MessageClassifyPage = "CLASSIFY_PAGE"
)

// QueryRequest is a single request on the control socket. URL carries the
// caller's page context for GET_STATUS and GET_SITE_TIME.
type QueryRequest struct {
	Type     string        `json:"type"`
	URL      string        `json:"url,omitempty"`
	Metadata *PageMetadata `json:"metadata,omitempty"`
}

// SiteTimeResponse answers GET_SITE_TIME: today's aggregate seconds across
// the domain and its related subdomains/superdomains.
type SiteTimeResponse struct {
	Seconds int64  `json:"seconds"`
	Domain  string `json:"domain"`
}
