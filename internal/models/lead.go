// Package models defines data structures used throughout the application.
package models

import "strings"

// Lead statuses. Status is free text in the store; NEW is the default
// assigned to freshly synced or manually created leads.
const (
	LeadStatusNew = "NEW"
)

// Lead sources after classification.
const (
	SourceFacebook = "fb"
	SourceDealer   = "jd"
	SourceWeb      = "web"
)

// Lead represents a prospective customer record in the database.
type Lead struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Phone    string `db:"phone" json:"phone"`
	Status   string `db:"status" json:"status"`
	Assignee string `db:"assignee" json:"assignee"`
	Source   string `db:"source" json:"source"`
}

// RemoteLead is the shape of a single record returned by the remote leads API.
// Every field is optional on the wire; defaults are applied during mapping.
type RemoteLead struct {
	LeadID       int64  `json:"lead_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
	LastTaskName string `json:"last_task_name"`
	Assignee     string `json:"assignee"`
	LeadSource   string `json:"lead_source"`
}

// LeadPage is one page of the paginated remote leads endpoint.
type LeadPage struct {
	Items   []RemoteLead `json:"items"`
	HasMore bool         `json:"hasMore"`
}

// MapLeadSource classifies a free-text remote source field into one of the
// fixed source buckets by case-insensitive substring match.
func MapLeadSource(raw string) string {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "facebook"):
		return SourceFacebook
	case strings.Contains(s, "dealer"), strings.Contains(s, "jd"):
		return SourceDealer
	default:
		return SourceWeb
	}
}

// StatusCount is one row of the leads-by-status report.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int64  `db:"count" json:"count"`
}

// SourceCount is one row of the leads-by-source report.
type SourceCount struct {
	Source string `db:"source" json:"source"`
	Count  int64  `db:"count" json:"count"`
}
