package repository

import "github.com/adkhamov/leadbook/internal/models"

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Lead returns the lead repository
	Lead() LeadRepository

	// History returns the history repository
	History() HistoryRepository
}

// LeadRepository interface defines lead table operations.
type LeadRepository interface {
	// UpsertLead inserts or fully replaces the lead sharing the same id.
	UpsertLead(lead *models.Lead) error

	// UpsertLeads applies one remote page as a single transaction.
	UpsertLeads(leads []*models.Lead) error

	// InsertLeadIgnoreDuplicate inserts unless a lead with the same phone
	// exists, returning the winning row's id either way.
	InsertLeadIgnoreDuplicate(lead *models.Lead) (int64, error)

	// ListLeads returns all leads, most recently created first.
	ListLeads() ([]*models.Lead, error)

	// SearchLeads matches name or phone by case-insensitive substring.
	SearchLeads(query string) ([]*models.Lead, error)

	// UpdateLeadStatus sets the status for the lead matching phone.
	// Zero affected rows is not an error.
	UpdateLeadStatus(phone, status string) error

	// GetLeadByPhone returns models.ErrLeadNotFound when no row matches.
	GetLeadByPhone(phone string) (*models.Lead, error)

	CountByStatus() ([]models.StatusCount, error)
	CountBySource() ([]models.SourceCount, error)
	CountLeads() (int64, error)
}

// HistoryRepository interface defines history table operations.
type HistoryRepository interface {
	// InsertHistory appends one interaction row and returns its id.
	InsertHistory(entry *models.HistoryEntry) (int64, error)

	// ListHistory returns all rows, newest first.
	ListHistory() ([]*models.HistoryEntry, error)

	// ListHistoryForLead returns rows linked to a lead id, newest first.
	ListHistoryForLead(leadID int64) ([]*models.HistoryEntry, error)

	// ListHistoryForPhone matches rows by normalized number, falling back
	// to the last-10-digit suffix for cross-region prefixes.
	ListHistoryForPhone(phone string) ([]*models.HistoryEntry, error)

	// CallStats aggregates call rows dated at or after since.
	CallStats(since string) (models.CallStats, error)
}
