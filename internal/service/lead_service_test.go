package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/repository/mocks"
	"github.com/adkhamov/leadbook/internal/service"
)

func newLeadFixture(t *testing.T) (service.LeadService, *mocks.MockLeadRepository, *mocks.MockHistoryRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	leads := mocks.NewMockLeadRepository(ctrl)
	history := mocks.NewMockHistoryRepository(ctrl)
	repo.EXPECT().Lead().Return(leads).AnyTimes()
	repo.EXPECT().History().Return(history).AnyTimes()

	return service.NewLeadService(repo, zap.NewNop()), leads, history
}

func TestLeadService_ListLeads(t *testing.T) {
	t.Run("empty query lists everything", func(t *testing.T) {
		svc, leads, _ := newLeadFixture(t)
		leads.EXPECT().ListLeads().Return([]*models.Lead{{ID: 1}}, nil)

		got, err := svc.ListLeads("   ")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("query runs a search", func(t *testing.T) {
		svc, leads, _ := newLeadFixture(t)
		leads.EXPECT().SearchLeads("aliya").Return([]*models.Lead{{ID: 2}}, nil)

		got, err := svc.ListLeads("  aliya ")
		require.NoError(t, err)
		assert.Equal(t, int64(2), got[0].ID)
	})
}

func TestLeadService_CreateLead(t *testing.T) {
	tests := []struct {
		name     string
		req      models.CreateLeadRequest
		inserted models.Lead
	}{
		{
			name: "bare phone gets every default",
			req:  models.CreateLeadRequest{Phone: "5550102030"},
			inserted: models.Lead{
				Name: "Unknown", Phone: "5550102030", Status: models.LeadStatusNew, Assignee: "-", Source: models.SourceWeb,
			},
		},
		{
			name: "explicit fields survive trimmed",
			req: models.CreateLeadRequest{
				Name: " Aliya ", Phone: " 5550102030 ", Status: "Interested", Assignee: "rustam", Source: "fb",
			},
			inserted: models.Lead{
				Name: "Aliya", Phone: "5550102030", Status: "Interested", Assignee: "rustam", Source: "fb",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, leads, _ := newLeadFixture(t)

			stored := tt.inserted
			stored.ID = 11

			leads.EXPECT().
				InsertLeadIgnoreDuplicate(gomock.Any()).
				DoAndReturn(func(lead *models.Lead) (int64, error) {
					assert.Equal(t, &tt.inserted, lead)
					return 11, nil
				})
			leads.EXPECT().GetLeadByPhone(tt.inserted.Phone).Return(&stored, nil)

			got, err := svc.CreateLead(&tt.req)
			require.NoError(t, err)
			assert.Equal(t, int64(11), got.ID)
		})
	}
}

func TestLeadService_UpdateStatus(t *testing.T) {
	svc, leads, _ := newLeadFixture(t)
	leads.EXPECT().UpdateLeadStatus("5550102030", "Interested").Return(nil)

	require.NoError(t, svc.UpdateStatus(" 5550102030 ", " Interested "))
}

func TestLeadService_Dial(t *testing.T) {
	t.Run("links the matching lead", func(t *testing.T) {
		svc, leads, history := newLeadFixture(t)

		leads.EXPECT().GetLeadByPhone("+1 (555) 010-2030").Return(&models.Lead{ID: 7}, nil)

		var got *models.HistoryEntry
		history.EXPECT().
			InsertHistory(gomock.Any()).
			DoAndReturn(func(entry *models.HistoryEntry) (int64, error) {
				got = entry
				return 42, nil
			})

		entry, err := svc.Dial(&models.DialRequest{Phone: "+1 (555) 010-2030", Note: " call about trade-in "})
		require.NoError(t, err)

		assert.Equal(t, int64(42), entry.ID)
		assert.Equal(t, "15550102030", got.Phone)
		assert.Equal(t, models.TypeDialed, got.Type)
		assert.Equal(t, int64(0), got.Duration)
		assert.True(t, got.LeadID.Valid)
		assert.Equal(t, int64(7), got.LeadID.Int64)
		assert.Equal(t, "call about trade-in", got.Note.String)
		assert.False(t, models.ParseHistoryDate(got.Date).IsZero())
	})

	t.Run("no lead yet leaves the link empty", func(t *testing.T) {
		svc, leads, history := newLeadFixture(t)

		leads.EXPECT().GetLeadByPhone("5550102030").Return(nil, models.ErrLeadNotFound)

		var got *models.HistoryEntry
		history.EXPECT().
			InsertHistory(gomock.Any()).
			DoAndReturn(func(entry *models.HistoryEntry) (int64, error) {
				got = entry
				return 1, nil
			})

		_, err := svc.Dial(&models.DialRequest{Phone: "5550102030"})
		require.NoError(t, err)
		assert.False(t, got.LeadID.Valid)
		assert.False(t, got.Note.Valid)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		svc, leads, history := newLeadFixture(t)

		leads.EXPECT().GetLeadByPhone("5550102030").Return(nil, models.ErrLeadNotFound)
		history.EXPECT().InsertHistory(gomock.Any()).Return(int64(0), errors.New("disk full"))

		_, err := svc.Dial(&models.DialRequest{Phone: "5550102030"})
		assert.Error(t, err)
	})
}

func TestLeadService_ListHistory(t *testing.T) {
	svc, _, history := newLeadFixture(t)
	history.EXPECT().ListHistory().Return([]*models.HistoryEntry{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.ListHistory()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
