package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/handler"
	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/scheduler"
	"github.com/adkhamov/leadbook/internal/service"
	"github.com/adkhamov/leadbook/internal/service/mocks"
)

type fixture struct {
	handler   http.Handler
	lead      *mocks.MockLeadService
	sync      *mocks.MockSyncService
	timeline  *mocks.MockTimelineService
	report    *mocks.MockReportService
	call      *mocks.MockCallService
	scheduler *mocks.MockSchedulerService
	health    *mocks.MockHealthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		lead:      mocks.NewMockLeadService(ctrl),
		sync:      mocks.NewMockSyncService(ctrl),
		timeline:  mocks.NewMockTimelineService(ctrl),
		report:    mocks.NewMockReportService(ctrl),
		call:      mocks.NewMockCallService(ctrl),
		scheduler: mocks.NewMockSchedulerService(ctrl),
		health:    mocks.NewMockHealthService(ctrl),
	}

	svc := &service.Service{
		Lead:      f.lead,
		Sync:      f.sync,
		Timeline:  f.timeline,
		Report:    f.report,
		Call:      f.call,
		Scheduler: f.scheduler,
		Health:    f.health,
	}

	f.handler = handler.NewHandler(svc, zap.NewNop()).Routes()
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandler_ListLeads(t *testing.T) {
	f := newFixture(t)
	f.lead.EXPECT().ListLeads("aliya").Return([]*models.Lead{{ID: 1, Name: "Aliya"}}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/leads?q=aliya", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Aliya", resp.Leads[0].Name)
}

func TestHandler_CreateLead(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.lead.EXPECT().
			CreateLead(gomock.Any()).
			Return(&models.Lead{ID: 5, Phone: "5550102030"}, nil)

		rec := f.do(t, http.MethodPost, "/api/v1/leads", `{"phone":"5550102030"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing phone fails validation", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/leads", `{"name":"Aliya"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Error)
	})

	t.Run("malformed json", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/leads", `{"phone":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_UpdateLeadStatus(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		f := newFixture(t)
		f.lead.EXPECT().UpdateStatus("5550102030", "Interested").Return(nil)

		rec := f.do(t, http.MethodPatch, "/api/v1/leads/5550102030/status", `{"status":"Interested"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("empty status rejected", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPatch, "/api/v1/leads/5550102030/status", `{"status":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetLeadTimeline(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.timeline.EXPECT().GetLeadTimeline("5550102030").Return(&models.LeadTimeline{
			Lead: &models.Lead{ID: 7, Phone: "5550102030"},
		}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/leads/5550102030/timeline", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown phone is 404", func(t *testing.T) {
		f := newFixture(t)
		f.timeline.EXPECT().GetLeadTimeline("0000000000").Return(nil, models.ErrLeadNotFound)

		rec := f.do(t, http.MethodGet, "/api/v1/leads/0000000000/timeline", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "LEAD_NOT_FOUND", decodeError(t, rec).Error)
	})
}

func TestHandler_IngestCallEvent(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		f := newFixture(t)
		f.call.EXPECT().Ingest(gomock.Any()).Return(nil)

		rec := f.do(t, http.MethodPost, "/api/v1/calls/events", `{"state":"Incoming","number":"5550102030","type":"INCOMING"}`)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("unknown state rejected", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/calls/events", `{"state":"Ringing","number":"5550102030"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("queue full is 503", func(t *testing.T) {
		f := newFixture(t)
		f.call.EXPECT().Ingest(gomock.Any()).Return(service.ErrEventQueueFull)

		rec := f.do(t, http.MethodPost, "/api/v1/calls/events", `{"state":"Disconnected","number":"5550102030"}`)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "EVENT_QUEUE_FULL", decodeError(t, rec).Error)
	})
}

func TestHandler_Dial(t *testing.T) {
	f := newFixture(t)
	f.lead.EXPECT().Dial(gomock.Any()).Return(&models.HistoryEntry{ID: 3, Phone: "5550102030", Type: models.TypeDialed}, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/calls/dial", `{"phone":"5550102030","note":"trade-in"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_TriggerSync(t *testing.T) {
	f := newFixture(t)

	done := make(chan struct{})
	f.sync.EXPECT().
		RunSyncPass(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			close(done)
			return nil
		})

	rec := f.do(t, http.MethodPost, "/api/v1/sync", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// The pass runs detached from the request.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sync pass never started")
	}
}

func TestHandler_GetReportSummary(t *testing.T) {
	t.Run("custom window", func(t *testing.T) {
		f := newFixture(t)
		f.report.EXPECT().GetSummary(30).Return(&models.ReportSummary{WindowDays: 30}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/reports/summary?days=30", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad days falls back to default", func(t *testing.T) {
		f := newFixture(t)
		f.report.EXPECT().GetSummary(0).Return(&models.ReportSummary{WindowDays: 7}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/reports/summary?days=-3", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_SchedulerControls(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		f := newFixture(t)
		f.scheduler.EXPECT().Start().Return(nil)

		rec := f.do(t, http.MethodPost, "/scheduler/start", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("start while running", func(t *testing.T) {
		f := newFixture(t)
		f.scheduler.EXPECT().Start().Return(scheduler.ErrSchedulerAlreadyRunning)

		rec := f.do(t, http.MethodPost, "/scheduler/start", "")
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "SCHEDULER_ALREADY_RUNNING", decodeError(t, rec).Error)
	})

	t.Run("stop while idle", func(t *testing.T) {
		f := newFixture(t)
		f.scheduler.EXPECT().Stop().Return(scheduler.ErrSchedulerNotRunning)

		rec := f.do(t, http.MethodPost, "/scheduler/stop", "")
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "SCHEDULER_NOT_RUNNING", decodeError(t, rec).Error)
	})
}

func TestHandler_HealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		f := newFixture(t)
		f.health.EXPECT().GetHealth().Return(&service.HealthStatus{
			Status:          service.HealthStatusHealthy,
			SchedulerStatus: service.ComponentRunning,
			DatabaseStatus:  service.ComponentConnected,
		})

		rec := f.do(t, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unhealthy is 503", func(t *testing.T) {
		f := newFixture(t)
		f.health.EXPECT().GetHealth().Return(&service.HealthStatus{
			Status:         service.HealthStatusUnhealthy,
			DatabaseStatus: service.ComponentDisconnected,
		})

		rec := f.do(t, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
