package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/phone"
)

type historyRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

// InsertHistory appends an interaction row. A missing or unparseable date is
// replaced with the current time so every row sorts deterministically.
func (r *historyRepository) InsertHistory(entry *models.HistoryEntry) (int64, error) {
	date := entry.Date
	if models.ParseHistoryDate(date).IsZero() {
		date = time.Now().UTC().Format(models.HistoryDateFormat)
	}

	query := `
		INSERT INTO history (lead_id, phone, date, duration, type, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.Exec(query, entry.LeadID, entry.Phone, date, entry.Duration, entry.Type, entry.Note)
	if err != nil {
		return 0, fmt.Errorf("failed to insert history entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted history id: %w", err)
	}

	return id, nil
}

// ListHistory retrieves all history rows, newest first.
func (r *historyRepository) ListHistory() ([]*models.HistoryEntry, error) {
	query := `
		SELECT id, lead_id, phone, date, duration, type, note
		FROM history
		ORDER BY date DESC, id DESC
	`

	entries := []*models.HistoryEntry{}
	if err := r.db.Select(&entries, query); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return entries, nil
}

// ListHistoryForLead retrieves rows linked to a lead id, newest first.
func (r *historyRepository) ListHistoryForLead(leadID int64) ([]*models.HistoryEntry, error) {
	query := `
		SELECT id, lead_id, phone, date, duration, type, note
		FROM history
		WHERE lead_id = ?
		ORDER BY date DESC, id DESC
	`

	entries := []*models.HistoryEntry{}
	if err := r.db.Select(&entries, query, leadID); err != nil {
		return nil, fmt.Errorf("failed to list history for lead %d: %w", leadID, err)
	}

	return entries, nil
}

// ListHistoryForPhone matches rows on the normalized number, falling back to
// the last-10-digit suffix when both sides carry one. History rows store
// digits only, so the parameter is normalized before matching.
func (r *historyRepository) ListHistoryForPhone(rawPhone string) ([]*models.HistoryEntry, error) {
	num := phone.Normalize(rawPhone)
	suffix := phone.Last10(num)

	query := `
		SELECT id, lead_id, phone, date, duration, type, note
		FROM history
		WHERE phone = ?
		   OR (LENGTH(phone) >= 10 AND ? != '' AND SUBSTR(phone, -10) = ?)
		ORDER BY date DESC, id DESC
	`

	// Suffix matching only applies when the lookup number itself has a
	// full 10-digit tail.
	if len(num) < 10 {
		suffix = ""
	}

	entries := []*models.HistoryEntry{}
	if err := r.db.Select(&entries, query, num, suffix, suffix); err != nil {
		return nil, fmt.Errorf("failed to list history for phone: %w", err)
	}

	return entries, nil
}

// CallStats aggregates call rows dated at or after since. Status pseudo-rows
// are excluded so the report reflects actual call activity.
func (r *historyRepository) CallStats(since string) (models.CallStats, error) {
	query := `
		SELECT COUNT(*) AS count, COALESCE(SUM(duration), 0) AS total_duration
		FROM history
		WHERE date >= ? AND type IN (?, ?, ?, ?)
	`

	var stats models.CallStats
	err := r.db.Get(&stats, query, since,
		models.TypeIncoming, models.TypeOutgoing, models.TypeMissed, models.TypeDialed)
	if err != nil {
		return models.CallStats{}, fmt.Errorf("failed to aggregate call stats: %w", err)
	}

	return stats, nil
}
