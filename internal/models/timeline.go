package models

import (
	"strings"
	"time"
	"unicode"
)

// LogEntry is the uniform shape of timeline items: persisted history rows and
// the synthetic entry representing a lead's current status. Synthetic entries
// have ID 0 and are never written back to the store.
type LogEntry struct {
	ID       int64     `json:"id"`
	Number   string    `json:"number"`
	Type     string    `json:"type"`
	Duration int64     `json:"duration"`
	Time     time.Time `json:"time"`
	Note     string    `json:"note,omitempty"`
}

// LeadTimeline pairs a lead with its merged, most-recent-first interaction
// list.
type LeadTimeline struct {
	Lead    *Lead      `json:"lead"`
	History []LogEntry `json:"history"`
}

// Display categories produced by NormalizeInteractionType.
const (
	CategoryIncoming      = "Incoming"
	CategoryOutgoing      = "Outgoing"
	CategoryMissed        = "Missed"
	CategoryWhatsApp      = "WhatsApp"
	CategoryFollowUp      = "Follow Up"
	CategoryInterested    = "Interested"
	CategoryNotInterested = "Not Interested"
)

// NormalizeInteractionType maps the loosely-typed history type column,
// including legacy numeric codes, onto a closed set of display categories.
// Unrecognized values echo back capitalized. This is the one canonical
// mapping; consumers must not reimplement it.
func NormalizeInteractionType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", TypeIncoming:
		return CategoryIncoming
	case "2", TypeOutgoing, TypeDialed:
		return CategoryOutgoing
	case "3", TypeMissed:
		return CategoryMissed
	case TypeWhatsApp:
		return CategoryWhatsApp
	case TypeFollowUp, "follow-up":
		return CategoryFollowUp
	case "interested":
		return CategoryInterested
	case "not interested", "not_interested":
		return CategoryNotInterested
	default:
		return capitalize(strings.TrimSpace(raw))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
