package models

import (
	"database/sql"
	"time"
)

// Interaction types as stored in the history table. The column also carries
// free-text status labels ("Interested", "Not Interested") written by older
// clients, so it is not a strict enum.
const (
	TypeIncoming = "incoming"
	TypeOutgoing = "outgoing"
	TypeMissed   = "missed"
	TypeWhatsApp = "whatsapp"
	TypeFollowUp = "followup"
	TypeDialed   = "dialed"
)

// HistoryEntry represents a single logged interaction tied to a phone number.
// LeadID is nullable: calls may arrive before a matching lead exists, and
// linking happens at read time by phone.
type HistoryEntry struct {
	ID       int64          `db:"id" json:"id"`
	LeadID   sql.NullInt64  `db:"lead_id" json:"lead_id,omitempty"`
	Phone    string         `db:"phone" json:"phone"`
	Date     string         `db:"date" json:"date"`
	Duration int64          `db:"duration" json:"duration"`
	Type     string         `db:"type" json:"type"`
	Note     sql.NullString `db:"note" json:"note,omitempty"`
}

// HistoryDateFormat is how new rows serialize their date column. Lexicographic
// order of this format matches chronological order, which the date index
// relies on.
const HistoryDateFormat = time.RFC3339

// ParseHistoryDate interprets the date column of a history row. Older rows use
// a space-separated format; anything unparseable maps to the zero time so it
// sorts oldest instead of breaking the timeline.
func ParseHistoryDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
