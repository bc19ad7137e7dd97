package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adkhamov/leadbook/internal/models"
)

func TestLeadRepository_UpsertLead(t *testing.T) {
	repo := newTestRepository(t)

	lead := &models.Lead{
		ID:       101,
		Name:     "Aliya Karimova",
		Phone:    "15550102030",
		Status:   models.LeadStatusNew,
		Assignee: "-",
		Source:   models.SourceFacebook,
	}
	require.NoError(t, repo.Lead().UpsertLead(lead))

	// Re-running with changed fields replaces the row instead of duplicating.
	lead.Status = "Interested"
	lead.Assignee = "rustam"
	require.NoError(t, repo.Lead().UpsertLead(lead))

	got, err := repo.Lead().GetLeadByPhone("15550102030")
	require.NoError(t, err)
	assert.Equal(t, int64(101), got.ID)
	assert.Equal(t, "Interested", got.Status)
	assert.Equal(t, "rustam", got.Assignee)

	count, err := repo.Lead().CountLeads()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLeadRepository_UpsertLeads_AppliesWholePage(t *testing.T) {
	repo := newTestRepository(t)

	page := []*models.Lead{
		{ID: 1, Name: "First", Phone: "5550100001", Status: "NEW", Assignee: "-", Source: "web"},
		{ID: 2, Name: "Second", Phone: "5550100002", Status: "NEW", Assignee: "-", Source: "fb"},
		{ID: 3, Name: "Third", Phone: "5550100003", Status: "NEW", Assignee: "-", Source: "jd"},
	}
	require.NoError(t, repo.Lead().UpsertLeads(page))

	leads, err := repo.Lead().ListLeads()
	require.NoError(t, err)
	require.Len(t, leads, 3)
	// Newest id first.
	assert.Equal(t, int64(3), leads[0].ID)
	assert.Equal(t, int64(1), leads[2].ID)

	// Re-applying the same page is idempotent.
	require.NoError(t, repo.Lead().UpsertLeads(page))
	count, err := repo.Lead().CountLeads()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// An empty page is a no-op.
	require.NoError(t, repo.Lead().UpsertLeads(nil))
}

func TestLeadRepository_InsertLeadIgnoreDuplicate(t *testing.T) {
	repo := newTestRepository(t)

	first := &models.Lead{Name: "Walk-in", Phone: "5550102030", Status: "NEW", Assignee: "-", Source: "web"}
	id1, err := repo.Lead().InsertLeadIgnoreDuplicate(first)
	require.NoError(t, err)
	require.NotZero(t, id1)

	// Same phone again: first write wins, existing id comes back.
	second := &models.Lead{Name: "Duplicate", Phone: "5550102030", Status: "Interested", Assignee: "x", Source: "fb"}
	id2, err := repo.Lead().InsertLeadIgnoreDuplicate(second)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	got, err := repo.Lead().GetLeadByPhone("5550102030")
	require.NoError(t, err)
	assert.Equal(t, "Walk-in", got.Name)
	assert.Equal(t, "NEW", got.Status)
}

func TestLeadRepository_SearchLeads(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Lead().UpsertLeads([]*models.Lead{
		{ID: 1, Name: "Aliya Karimova", Phone: "5550100001", Status: "NEW", Assignee: "-", Source: "web"},
		{ID: 2, Name: "Bob Smith", Phone: "5550100002", Status: "NEW", Assignee: "-", Source: "web"},
		{ID: 3, Name: "ALIYA B", Phone: "7770100003", Status: "NEW", Assignee: "-", Source: "web"},
	}))

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"case-insensitive name match", "aliya", 2},
		{"phone substring", "555010", 2},
		{"exact phone", "7770100003", 1},
		{"no match", "zazaza", 0},
		{"empty query matches everything", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leads, err := repo.Lead().SearchLeads(tt.query)
			require.NoError(t, err)
			assert.Len(t, leads, tt.wantCount)
		})
	}
}

func TestLeadRepository_UpdateLeadStatus(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Lead().UpsertLead(&models.Lead{
		ID: 1, Name: "Aliya", Phone: "5550100001", Status: "NEW", Assignee: "-", Source: "web",
	}))

	require.NoError(t, repo.Lead().UpdateLeadStatus("5550100001", "Not Interested"))

	got, err := repo.Lead().GetLeadByPhone("5550100001")
	require.NoError(t, err)
	assert.Equal(t, "Not Interested", got.Status)

	// Unknown phone is accepted silently.
	require.NoError(t, repo.Lead().UpdateLeadStatus("0000000000", "Interested"))
}

func TestLeadRepository_GetLeadByPhone_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Lead().GetLeadByPhone("5550100001")
	assert.ErrorIs(t, err, models.ErrLeadNotFound)
}

func TestLeadRepository_Counts(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Lead().UpsertLeads([]*models.Lead{
		{ID: 1, Name: "A", Phone: "5550100001", Status: "NEW", Assignee: "-", Source: "web"},
		{ID: 2, Name: "B", Phone: "5550100002", Status: "NEW", Assignee: "-", Source: "fb"},
		{ID: 3, Name: "C", Phone: "5550100003", Status: "Interested", Assignee: "-", Source: "fb"},
	}))

	byStatus, err := repo.Lead().CountByStatus()
	require.NoError(t, err)
	require.Len(t, byStatus, 2)
	assert.Equal(t, models.StatusCount{Status: "NEW", Count: 2}, byStatus[0])
	assert.Equal(t, models.StatusCount{Status: "Interested", Count: 1}, byStatus[1])

	bySource, err := repo.Lead().CountBySource()
	require.NoError(t, err)
	require.Len(t, bySource, 2)
	assert.Equal(t, models.SourceCount{Source: "fb", Count: 2}, bySource[0])

	total, err := repo.Lead().CountLeads()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
