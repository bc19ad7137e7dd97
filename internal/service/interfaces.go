package service

import (
	"context"

	"github.com/adkhamov/leadbook/internal/calltrack"
	"github.com/adkhamov/leadbook/internal/models"
)

// LeadService covers lead list management and the dialer's write path.
type LeadService interface {
	ListLeads(query string) ([]*models.Lead, error)
	CreateLead(req *models.CreateLeadRequest) (*models.Lead, error)
	UpdateStatus(phone, status string) error
	Dial(req *models.DialRequest) (*models.HistoryEntry, error)
	ListHistory() ([]*models.HistoryEntry, error)
}

// SyncService pulls the remote lead set into the local store.
type SyncService interface {
	RunSyncPass(ctx context.Context) error
	GetCircuitBreakerStatus() (state string, requests uint32, failures uint32)
}

// TimelineService builds merged, time-ordered interaction views.
type TimelineService interface {
	GetLeadTimeline(phone string) (*models.LeadTimeline, error)
	GetGlobalTimeline() ([]*models.LeadTimeline, error)
}

// ReportService produces the summary report.
type ReportService interface {
	GetSummary(windowDays int) (*models.ReportSummary, error)
}

// SessionService resolves the authenticated entity. A nil user means nobody
// is logged in and syncing is skipped.
type SessionService interface {
	GetLoggedInUser(ctx context.Context) (*models.SessionUser, error)
}

// CallService accepts raw call-state transitions and runs the normalizer
// behind them.
type CallService interface {
	Ingest(ev calltrack.Event) error
	Start() error
	Stop() error
	IsRunning() bool
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}
