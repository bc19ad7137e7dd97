package models

import "time"

// CreateLeadRequest is the payload for manually creating a lead. Only phone
// is required; everything else falls back to the same defaults the sync
// engine applies.
type CreateLeadRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone" validate:"required,min=3"`
	Status   string `json:"status"`
	Assignee string `json:"assignee"`
	Source   string `json:"source"`
}

// UpdateStatusRequest changes the status label of the lead matching a phone.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// DialRequest records an optimistic outbound-call entry before any native
// call state is observed.
type DialRequest struct {
	Phone string `json:"phone" validate:"required,min=3"`
	Note  string `json:"note"`
}

// CallEventRequest is one raw call-state transition pushed by the device-side
// event source.
type CallEventRequest struct {
	State  string `json:"state" validate:"required,oneof=Incoming OffHook Disconnected"`
	Number string `json:"number"`
	Type   string `json:"type" validate:"omitempty,oneof=INCOMING OUTGOING"`
}

// LeadListResponse wraps the lead list endpoints.
type LeadListResponse struct {
	Leads []*Lead `json:"leads"`
	Count int     `json:"count"`
}

// HistoryListResponse wraps the global history endpoint.
type HistoryListResponse struct {
	History []*HistoryEntry `json:"history"`
	Count   int             `json:"count"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// SchedulerResponse reports the outcome of a scheduler control call.
type SchedulerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SyncResponse acknowledges a manually triggered sync pass.
type SyncResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CallStats aggregates call activity for the report window.
type CallStats struct {
	Count         int64 `db:"count" json:"count"`
	TotalDuration int64 `db:"total_duration" json:"total_duration"`
}

// ReportSummary is the simple reporting view: lead composition plus recent
// call activity.
type ReportSummary struct {
	TotalLeads int64         `json:"total_leads"`
	ByStatus   []StatusCount `json:"by_status"`
	BySource   []SourceCount `json:"by_source"`
	Calls      CallStats     `json:"calls"`
	WindowDays int           `json:"window_days"`
}

// SessionUser is the authenticated entity as exposed by the session
// collaborator. An empty EntityID means nobody is logged in.
type SessionUser struct {
	EntityID string `json:"entity_id"`
}

// HealthResponse is the health endpoint body.
type HealthResponse struct {
	Status               string    `json:"status"`
	SchedulerStatus      string    `json:"scheduler_status,omitempty"`
	DatabaseStatus       string    `json:"database_status,omitempty"`
	RedisStatus          string    `json:"redis_status,omitempty"`
	ListenerStatus       string    `json:"listener_status,omitempty"`
	CircuitBreakerState  string    `json:"circuit_breaker_state,omitempty"`
	CircuitBreakerStatus string    `json:"circuit_breaker_status,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
}
