package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/config"
	"github.com/adkhamov/leadbook/internal/scheduler"
)

type schedulerService struct {
	scheduler   *scheduler.Scheduler
	syncService SyncService
	logger      *zap.Logger
}

func NewSchedulerService(
	cfg *config.Config,
	syncService SyncService,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute

	svc := &schedulerService{
		syncService: syncService,
		logger:      logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, interval, svc.executeSyncPass)
	return svc
}

func (s *schedulerService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) executeSyncPass(ctx context.Context) error {
	return s.syncService.RunSyncPass(ctx)
}
