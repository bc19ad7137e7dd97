package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/adkhamov/leadbook/internal/models"
)

type leadRepository struct {
	db *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// UpsertLead inserts a lead or replaces the row sharing its id. INSERT OR
// REPLACE also resolves a phone-unique collision in favor of the incoming
// row, which matches the last-write-wins sync contract.
func (r *leadRepository) UpsertLead(lead *models.Lead) error {
	query := `
		INSERT OR REPLACE INTO leads (id, name, phone, status, assignee, source)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, lead.ID, lead.Name, lead.Phone, lead.Status, lead.Assignee, lead.Source)
	if err != nil {
		return fmt.Errorf("failed to upsert lead %d: %w", lead.ID, err)
	}

	return nil
}

// UpsertLeads applies a whole sync page inside one transaction so a reader
// never observes a half-applied page.
func (r *leadRepository) UpsertLeads(leads []*models.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin upsert transaction: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO leads (id, name, phone, status, assignee, source)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	for _, lead := range leads {
		if _, err := tx.Exec(query, lead.ID, lead.Name, lead.Phone, lead.Status, lead.Assignee, lead.Source); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("failed to upsert lead %d (rollback failed: %v): %w", lead.ID, rbErr, err)
			}
			return fmt.Errorf("failed to upsert lead %d: %w", lead.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert transaction: %w", err)
	}

	return nil
}

// InsertLeadIgnoreDuplicate creates a lead unless one with the same phone
// already exists. The first write wins; the existing id comes back silently.
func (r *leadRepository) InsertLeadIgnoreDuplicate(lead *models.Lead) (int64, error) {
	query := `
		INSERT INTO leads (name, phone, status, assignee, source)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(phone) DO NOTHING
	`

	_, err := r.db.Exec(query, lead.Name, lead.Phone, lead.Status, lead.Assignee, lead.Source)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lead: %w", err)
	}

	var id int64
	if err := r.db.Get(&id, `SELECT id FROM leads WHERE phone = ?`, lead.Phone); err != nil {
		return 0, fmt.Errorf("failed to resolve lead id for phone %q: %w", lead.Phone, err)
	}

	return id, nil
}

// ListLeads retrieves all leads, most recently created first.
func (r *leadRepository) ListLeads() ([]*models.Lead, error) {
	query := `
		SELECT id, name, phone, status, assignee, source
		FROM leads
		ORDER BY id DESC
	`

	leads := []*models.Lead{}
	if err := r.db.Select(&leads, query); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, nil
}

// SearchLeads matches name or phone by case-insensitive substring.
func (r *leadRepository) SearchLeads(query string) ([]*models.Lead, error) {
	stmt := `
		SELECT id, name, phone, status, assignee, source
		FROM leads
		WHERE LOWER(name) LIKE ? OR LOWER(phone) LIKE ?
		ORDER BY id DESC
	`

	pattern := "%" + strings.ToLower(query) + "%"

	leads := []*models.Lead{}
	if err := r.db.Select(&leads, stmt, pattern, pattern); err != nil {
		return nil, fmt.Errorf("failed to search leads: %w", err)
	}

	return leads, nil
}

// UpdateLeadStatus sets the status for the lead matching phone. A phone with
// no lead is a no-op, not an error.
func (r *leadRepository) UpdateLeadStatus(phone, status string) error {
	query := `UPDATE leads SET status = ? WHERE phone = ?`

	if _, err := r.db.Exec(query, status, phone); err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	return nil
}

// GetLeadByPhone returns the lead matching the exact phone.
func (r *leadRepository) GetLeadByPhone(phone string) (*models.Lead, error) {
	query := `
		SELECT id, name, phone, status, assignee, source
		FROM leads
		WHERE phone = ?
	`

	var lead models.Lead
	err := r.db.Get(&lead, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead by phone: %w", err)
	}

	return &lead, nil
}

// CountByStatus groups the lead table by status label.
func (r *leadRepository) CountByStatus() ([]models.StatusCount, error) {
	query := `SELECT status, COUNT(*) AS count FROM leads GROUP BY status ORDER BY count DESC`

	counts := []models.StatusCount{}
	if err := r.db.Select(&counts, query); err != nil {
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}

	return counts, nil
}

// CountBySource groups the lead table by classified source.
func (r *leadRepository) CountBySource() ([]models.SourceCount, error) {
	query := `SELECT source, COUNT(*) AS count FROM leads GROUP BY source ORDER BY count DESC`

	counts := []models.SourceCount{}
	if err := r.db.Select(&counts, query); err != nil {
		return nil, fmt.Errorf("failed to count leads by source: %w", err)
	}

	return counts, nil
}

// CountLeads returns the total number of leads.
func (r *leadRepository) CountLeads() (int64, error) {
	var count int64
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM leads`); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}

	return count, nil
}
