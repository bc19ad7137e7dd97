package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/adkhamov/leadbook/internal/repository"
)

type healthService struct {
	repo             repository.Repository
	redisClient      *redis.Client
	schedulerService SchedulerService
	callService      CallService
	syncService      SyncService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	schedulerService SchedulerService,
	callService CallService,
	syncService SyncService,
) HealthService {
	return &healthService{
		repo:             repo,
		redisClient:      redisClient,
		schedulerService: schedulerService,
		callService:      callService,
		syncService:      syncService,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: HealthStatusHealthy,
	}

	if s.schedulerService.IsRunning() {
		status.SchedulerStatus = ComponentRunning
	} else {
		status.SchedulerStatus = ComponentStopped
	}

	if s.callService.IsRunning() {
		status.ListenerStatus = ComponentRunning
	} else {
		status.ListenerStatus = ComponentStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.syncService.GetCircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	// The store is the single source of truth; without it nothing works.
	// Redis only carries best-effort state, so its loss merely degrades.
	if status.DatabaseStatus != ComponentConnected {
		status.Status = HealthStatusUnhealthy
	} else if status.RedisStatus != ComponentConnected || state == BreakerOpen {
		status.Status = HealthStatusDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() string {
	if err := s.repo.Ping(); err != nil {
		return ComponentDisconnected
	}
	return ComponentConnected
}

func (s *healthService) checkRedisHealth() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return ComponentDisconnected
	}

	return ComponentConnected
}
