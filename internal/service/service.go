package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/calltrack"
	"github.com/adkhamov/leadbook/internal/config"
	"github.com/adkhamov/leadbook/internal/repository"
)

type Service struct {
	Lead      LeadService
	Sync      SyncService
	Timeline  TimelineService
	Report    ReportService
	Session   SessionService
	Call      CallService
	Scheduler SchedulerService
	Health    HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	sessionService := NewSessionService(cfg, redisClient, logger)
	leadService := NewLeadService(repo, logger)
	syncService := NewSyncService(cfg, repo, sessionService, redisClient, logger)
	timelineService := NewTimelineService(repo, logger)
	reportService := NewReportService(repo)
	schedulerService := NewSchedulerService(cfg, syncService, logger)

	tracker := calltrack.NewTracker(repo.History(), logger)
	callService := NewCallService(tracker, logger)

	healthService := NewHealthService(repo, redisClient, schedulerService, callService, syncService)

	return &Service{
		Lead:      leadService,
		Sync:      syncService,
		Timeline:  timelineService,
		Report:    reportService,
		Session:   sessionService,
		Call:      callService,
		Scheduler: schedulerService,
		Health:    healthService,
	}
}
