package service

import (
	"fmt"
	"time"

	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/repository"
)

const defaultReportWindowDays = 7

type reportService struct {
	repo repository.Repository
}

func NewReportService(repo repository.Repository) ReportService {
	return &reportService{
		repo: repo,
	}
}

// GetSummary builds the simple reporting view: lead composition by status and
// source plus call volume over the trailing window.
func (s *reportService) GetSummary(windowDays int) (*models.ReportSummary, error) {
	if windowDays <= 0 {
		windowDays = defaultReportWindowDays
	}

	total, err := s.repo.Lead().CountLeads()
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	byStatus, err := s.repo.Lead().CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	bySource, err := s.repo.Lead().CountBySource()
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	since := time.Now().UTC().AddDate(0, 0, -windowDays).Format(models.HistoryDateFormat)
	calls, err := s.repo.History().CallStats(since)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	return &models.ReportSummary{
		TotalLeads: total,
		ByStatus:   byStatus,
		BySource:   bySource,
		Calls:      calls,
		WindowDays: windowDays,
	}, nil
}
