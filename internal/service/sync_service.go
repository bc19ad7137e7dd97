package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/config"
	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/repository"
)

const syncStateKey = "leadsync:last"

type syncService struct {
	cfg            *config.Config
	repo           repository.Repository
	session        SessionService
	redisClient    *redis.Client
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewSyncService(
	cfg *config.Config,
	repo repository.Repository,
	session SessionService,
	redisClient *redis.Client,
	logger *zap.Logger,
) SyncService {
	cb := NewCircuitBreaker(&cfg.RemoteAPI.CircuitBreaker, logger)

	return &syncService{
		cfg:         cfg,
		repo:        repo,
		session:     session,
		redisClient: redisClient,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RemoteAPI.Timeout) * time.Second,
		},
		logger:         logger,
		circuitBreaker: cb,
	}
}

// RunSyncPass pulls every page of the logged-in entity's lead set and upserts
// it into the local store. A fetch failure aborts the pass but keeps the
// pages already applied; the next scheduled pass simply retries from scratch,
// which is safe because upsert-by-id replaces rather than duplicates.
func (s *syncService) RunSyncPass(ctx context.Context) error {
	user, err := s.session.GetLoggedInUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}
	if user == nil || user.EntityID == "" {
		s.logger.Debug("No logged-in entity, skipping sync pass")
		return nil
	}

	s.logger.Info("Starting lead sync pass", zap.String("entityID", user.EntityID))

	limit := s.cfg.RemoteAPI.PageSize
	offset := 0
	pages := 0
	upserted := 0

	for {
		var page models.LeadPage
		err := s.circuitBreaker.Execute(ctx, func() error {
			return s.fetchPage(ctx, user.EntityID, offset, limit, &page)
		})
		if err != nil {
			s.logger.Error("Lead sync pass aborted",
				zap.Int("offset", offset),
				zap.Int("pagesApplied", pages),
				zap.Error(err))
			return fmt.Errorf("sync aborted at offset %d: %w", offset, err)
		}

		leads := make([]*models.Lead, 0, len(page.Items))
		for _, item := range page.Items {
			leads = append(leads, mapRemoteLead(item))
		}

		if err := s.repo.Lead().UpsertLeads(leads); err != nil {
			return fmt.Errorf("failed to apply page at offset %d: %w", offset, err)
		}

		pages++
		upserted += len(leads)

		if !page.HasMore {
			break
		}
		offset += limit
	}

	s.cacheSyncState(pages, upserted)

	s.logger.Info("Lead sync pass completed",
		zap.Int("pages", pages),
		zap.Int("upserted", upserted))

	return nil
}

// fetchPage requests one page of the remote leads endpoint. Any non-2xx
// status is a failure.
func (s *syncService) fetchPage(ctx context.Context, entityID string, offset, limit int, out *models.LeadPage) error {
	params := url.Values{}
	params.Set("entity_id", entityID)
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))

	endpoint := s.cfg.RemoteAPI.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.cfg.RemoteAPI.AuthKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.RemoteAPI.AuthKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch leads page: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode leads page: %w", err)
	}

	return nil
}

// mapRemoteLead applies the boundary defaults so partial remote data never
// leaks past this step.
func mapRemoteLead(r models.RemoteLead) *models.Lead {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "Unknown"
	}

	phone := strings.TrimSpace(r.Phone)
	if phone == "" {
		phone = "N/A"
	}

	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = strings.TrimSpace(r.LastTaskName)
	}
	if status == "" {
		status = models.LeadStatusNew
	}

	assignee := strings.TrimSpace(r.Assignee)
	if assignee == "" {
		assignee = "-"
	}

	return &models.Lead{
		ID:       r.LeadID,
		Name:     name,
		Phone:    phone,
		Status:   status,
		Assignee: assignee,
		Source:   models.MapLeadSource(r.LeadSource),
	}
}

// cacheSyncState records the pass summary in Redis. Best effort only.
func (s *syncService) cacheSyncState(pages, upserted int) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	state, err := json.Marshal(map[string]interface{}{
		"completed_at": time.Now().UTC().Format(time.RFC3339),
		"pages":        pages,
		"upserted":     upserted,
	})
	if err != nil {
		return
	}

	if err := s.redisClient.Set(ctx, syncStateKey, state, 24*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to cache sync state in Redis", zap.Error(err))
	}
}

func (s *syncService) GetCircuitBreakerStatus() (state string, requests uint32, failures uint32) {
	state = s.circuitBreaker.GetState()
	requests, failures = s.circuitBreaker.GetCounts()
	return
}
