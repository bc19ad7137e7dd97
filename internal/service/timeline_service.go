package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/repository"
)

type timelineService struct {
	repo   repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewTimelineService(repo repository.Repository, logger *zap.Logger) TimelineService {
	return &timelineService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// GetLeadTimeline merges a lead's call history with a synthetic entry for its
// current status, most recent first. A phone with no lead returns
// models.ErrLeadNotFound, which callers render as an empty state.
func (s *timelineService) GetLeadTimeline(phoneNumber string) (*models.LeadTimeline, error) {
	lead, err := s.repo.Lead().GetLeadByPhone(strings.TrimSpace(phoneNumber))
	if err != nil {
		return nil, err
	}

	return s.buildTimeline(lead)
}

// GetGlobalTimeline aggregates every lead's timeline and orders leads by
// their most recent interaction. Leads with no history sort last.
func (s *timelineService) GetGlobalTimeline() ([]*models.LeadTimeline, error) {
	leads, err := s.repo.Lead().ListLeads()
	if err != nil {
		return nil, fmt.Errorf("failed to list leads for timeline: %w", err)
	}

	timelines := make([]*models.LeadTimeline, 0, len(leads))
	for _, lead := range leads {
		tl, err := s.buildTimeline(lead)
		if err != nil {
			return nil, err
		}
		timelines = append(timelines, tl)
	}

	sort.SliceStable(timelines, func(i, j int) bool {
		return latestEntryTime(timelines[i]).After(latestEntryTime(timelines[j]))
	})

	return timelines, nil
}

func (s *timelineService) buildTimeline(lead *models.Lead) (*models.LeadTimeline, error) {
	rows, err := s.repo.History().ListHistoryForPhone(lead.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for lead %d: %w", lead.ID, err)
	}

	entries := make([]models.LogEntry, 0, len(rows)+1)
	for _, row := range rows {
		entries = append(entries, models.LogEntry{
			ID:       row.ID,
			Number:   row.Phone,
			Type:     row.Type,
			Duration: row.Duration,
			Time:     models.ParseHistoryDate(row.Date),
			Note:     row.Note.String,
		})
	}

	// The current status rides along as a transient pseudo-entry; it is
	// never written to the store.
	if lead.Status != "" && lead.Status != models.LeadStatusNew {
		entries = append(entries, models.LogEntry{
			Number: lead.Phone,
			Type:   lead.Status,
			Time:   s.now(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})

	return &models.LeadTimeline{
		Lead:    lead,
		History: entries,
	}, nil
}

func latestEntryTime(tl *models.LeadTimeline) time.Time {
	if len(tl.History) == 0 {
		return time.Time{}
	}
	return tl.History[0].Time
}
