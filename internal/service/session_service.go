package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/config"
	"github.com/adkhamov/leadbook/internal/models"
)

const sessionKey = "session:user"

// sessionService resolves the logged-in entity. The configured entity id is
// the source of truth; it is mirrored into Redis so other processes can read
// it, and the mirror serves as a fallback when config is empty.
type sessionService struct {
	cfg         *config.Config
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewSessionService(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) SessionService {
	return &sessionService{
		cfg:         cfg,
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetLoggedInUser returns the authenticated entity, or nil when nobody is
// logged in. Absence is not an error; the sync engine treats it as
// "do not sync".
func (s *sessionService) GetLoggedInUser(ctx context.Context) (*models.SessionUser, error) {
	if entityID := s.cfg.Session.EntityID; entityID != "" {
		s.mirror(entityID)
		return &models.SessionUser{EntityID: entityID}, nil
	}

	rctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	entityID, err := s.redisClient.Get(rctx, sessionKey).Result()
	if err != nil {
		// redis.Nil and connectivity failures both mean "no session";
		// syncing quietly stays off.
		return nil, nil
	}
	if entityID == "" {
		return nil, nil
	}

	return &models.SessionUser{EntityID: entityID}, nil
}

func (s *sessionService) mirror(entityID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Set(ctx, sessionKey, entityID, 0).Err(); err != nil {
		s.logger.Warn("Failed to mirror session in Redis", zap.Error(err))
	}
}
