package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/phone"
	"github.com/adkhamov/leadbook/internal/repository"
)

type leadService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewLeadService(repo repository.Repository, logger *zap.Logger) LeadService {
	return &leadService{
		repo:   repo,
		logger: logger,
	}
}

// ListLeads returns the full list, or a substring search when query is
// non-empty.
func (s *leadService) ListLeads(query string) ([]*models.Lead, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.Lead().ListLeads()
	}
	return s.repo.Lead().SearchLeads(query)
}

// CreateLead inserts a manually created lead, applying the same defaults the
// sync engine uses. A duplicate phone silently resolves to the existing row.
func (s *leadService) CreateLead(req *models.CreateLeadRequest) (*models.Lead, error) {
	lead := &models.Lead{
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Status:   strings.TrimSpace(req.Status),
		Assignee: strings.TrimSpace(req.Assignee),
		Source:   strings.TrimSpace(req.Source),
	}
	if lead.Name == "" {
		lead.Name = "Unknown"
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if lead.Assignee == "" {
		lead.Assignee = "-"
	}
	if lead.Source == "" {
		lead.Source = models.SourceWeb
	}

	id, err := s.repo.Lead().InsertLeadIgnoreDuplicate(lead)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	created, err := s.repo.Lead().GetLeadByPhone(lead.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to read back lead %d: %w", id, err)
	}

	return created, nil
}

// UpdateStatus sets the status label for the lead matching phone.
func (s *leadService) UpdateStatus(phoneNumber, status string) error {
	return s.repo.Lead().UpdateLeadStatus(strings.TrimSpace(phoneNumber), strings.TrimSpace(status))
}

// Dial writes the optimistic zero-duration entry for an outbound call. The
// normalizer may later add its own row for the same physical call; both are
// kept (see the type mapping, which groups them for display).
func (s *leadService) Dial(req *models.DialRequest) (*models.HistoryEntry, error) {
	entry := &models.HistoryEntry{
		Phone:    phone.Normalize(req.Phone),
		Date:     time.Now().UTC().Format(models.HistoryDateFormat),
		Duration: 0,
		Type:     models.TypeDialed,
	}
	if note := strings.TrimSpace(req.Note); note != "" {
		entry.Note = sql.NullString{String: note, Valid: true}
	}

	// Best-effort lead link; the call may predate the lead.
	lead, err := s.repo.Lead().GetLeadByPhone(strings.TrimSpace(req.Phone))
	if err != nil && !errors.Is(err, models.ErrLeadNotFound) {
		s.logger.Warn("Failed to resolve lead for dial entry",
			zap.String("phone", entry.Phone),
			zap.Error(err))
	}
	if lead != nil {
		entry.LeadID = sql.NullInt64{Int64: lead.ID, Valid: true}
	}

	id, err := s.repo.History().InsertHistory(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to record dialed call: %w", err)
	}
	entry.ID = id

	return entry, nil
}

// ListHistory returns the global interaction log, newest first.
func (s *leadService) ListHistory() ([]*models.HistoryEntry, error) {
	return s.repo.History().ListHistory()
}
