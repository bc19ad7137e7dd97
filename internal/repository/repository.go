package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db      *sqlx.DB
	lead    LeadRepository
	history HistoryRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:      db,
		lead:    NewLeadRepository(db),
		history: NewHistoryRepository(db),
	}
}

// Lead returns the lead repository.
func (r *repositoryImpl) Lead() LeadRepository {
	return r.lead
}

// History returns the history repository.
func (r *repositoryImpl) History() HistoryRepository {
	return r.history
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
