// Package handler provides HTTP request handlers for the application.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/calltrack"
	"github.com/adkhamov/leadbook/internal/middleware"
	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/scheduler"
	"github.com/adkhamov/leadbook/internal/service"
)

const (
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
	errorCodeValidation              = "VALIDATION_ERROR"
	errorCodeLeadNotFound            = "LEAD_NOT_FOUND"
	errorCodeQueueFull               = "EVENT_QUEUE_FULL"
)

const (
	errorMessageSchedulerAlreadyRunning = "Scheduler is already running"
	errorMessageSchedulerNotRunning     = "Scheduler is not running"
	errorMessageFailedToStartScheduler  = "Failed to start scheduler"
	errorMessageFailedToStopScheduler   = "Failed to stop scheduler"
	errorMessageFailedToListLeads       = "Failed to retrieve leads"
	errorMessageFailedToCreateLead      = "Failed to create lead"
	errorMessageFailedToUpdateStatus    = "Failed to update lead status"
	errorMessageFailedToListHistory     = "Failed to retrieve history"
	errorMessageFailedToLoadTimeline    = "Failed to load timeline"
	errorMessageFailedToRecordDial      = "Failed to record dialed call"
	errorMessageFailedToBuildReport     = "Failed to build report"
	errorMessageLeadNotFound            = "No lead matches this phone"
	errorMessageInvalidPayload          = "Request payload failed validation"
)

type Handler struct {
	service  *service.Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates the handler serving every API route.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// Routes mounts all API endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)
	r.Post("/scheduler/start", h.StartScheduler)
	r.Post("/scheduler/stop", h.StopScheduler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leads", h.ListLeads)
		r.Post("/leads", h.CreateLead)
		r.Patch("/leads/{phone}/status", h.UpdateLeadStatus)
		r.Get("/leads/{phone}/timeline", h.GetLeadTimeline)
		r.Get("/timeline", h.GetGlobalTimeline)
		r.Get("/history", h.ListHistory)
		r.Post("/calls/dial", h.Dial)
		r.Post("/calls/events", h.IngestCallEvent)
		r.Post("/sync", h.TriggerSync)
		r.Get("/reports/summary", h.GetReportSummary)
	})

	return r
}

// ListLeads returns all leads, or a filtered set when ?q= is present.
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.service.Lead.ListLeads(r.URL.Query().Get("q"))
	if err != nil {
		h.logError(r, "Failed to list leads", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToListLeads)
		return
	}

	render.JSON(w, r, models.LeadListResponse{
		Leads: leads,
		Count: len(leads),
	})
}

// CreateLead inserts a manually created lead. Duplicate phones resolve to the
// existing lead rather than erroring.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLeadRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	lead, err := h.service.Lead.CreateLead(&req)
	if err != nil {
		h.logError(r, "Failed to create lead", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToCreateLead)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, lead)
}

// UpdateLeadStatus sets the status label for the lead matching the phone in
// the path. A phone with no lead is accepted and does nothing.
func (h *Handler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.Lead.UpdateStatus(chi.URLParam(r, "phone"), req.Status); err != nil {
		h.logError(r, "Failed to update lead status", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToUpdateStatus)
		return
	}

	render.NoContent(w, r)
}

// GetLeadTimeline returns the merged interaction view for one lead.
func (h *Handler) GetLeadTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.service.Timeline.GetLeadTimeline(chi.URLParam(r, "phone"))
	if err != nil {
		if errors.Is(err, models.ErrLeadNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeLeadNotFound, errorMessageLeadNotFound)
			return
		}
		h.logError(r, "Failed to load lead timeline", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToLoadTimeline)
		return
	}

	render.JSON(w, r, timeline)
}

// GetGlobalTimeline returns every lead's timeline, most recently active lead
// first.
func (h *Handler) GetGlobalTimeline(w http.ResponseWriter, r *http.Request) {
	timelines, err := h.service.Timeline.GetGlobalTimeline()
	if err != nil {
		h.logError(r, "Failed to load global timeline", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToLoadTimeline)
		return
	}

	render.JSON(w, r, timelines)
}

// ListHistory returns the raw interaction log, newest first.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.Lead.ListHistory()
	if err != nil {
		h.logError(r, "Failed to list history", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToListHistory)
		return
	}

	render.JSON(w, r, models.HistoryListResponse{
		History: history,
		Count:   len(history),
	})
}

// Dial records the optimistic outbound-call entry.
func (h *Handler) Dial(w http.ResponseWriter, r *http.Request) {
	var req models.DialRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.service.Lead.Dial(&req)
	if err != nil {
		h.logError(r, "Failed to record dialed call", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToRecordDial)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, entry)
}

// IngestCallEvent queues one raw call-state transition for the normalizer.
func (h *Handler) IngestCallEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CallEventRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ev := calltrack.Event{
		State:  calltrack.CallState(req.State),
		Number: req.Number,
		Type:   req.Type,
	}

	if err := h.service.Call.Ingest(ev); err != nil {
		h.sendError(w, r, http.StatusServiceUnavailable, errorCodeQueueFull, "Call event queue is full, retry later")
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, map[string]string{"status": "accepted"})
}

// TriggerSync kicks off a sync pass in the background. Sync failures are
// background noise by design; the response only acknowledges the start.
func (h *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	// Detached from the request context: the pass outlives the response.
	go func() {
		if err := h.service.Sync.RunSyncPass(context.Background()); err != nil {
			h.logger.Error("Manual sync pass failed",
				zap.String("request_id", requestID),
				zap.Error(err))
		}
	}()

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, models.SyncResponse{
		Status:  "started",
		Message: "Sync pass started",
	})
}

// GetReportSummary returns the summary report. ?days= adjusts the call
// activity window.
func (h *Handler) GetReportSummary(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	summary, err := h.service.Report.GetSummary(days)
	if err != nil {
		h.logError(r, "Failed to build report", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToBuildReport)
		return
	}

	render.JSON(w, r, summary)
}

// StartScheduler starts the periodic sync loop.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Start(); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, errorMessageSchedulerAlreadyRunning)
			return
		}

		h.logError(r, "Failed to start scheduler", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStartScheduler)
		return
	}

	render.JSON(w, r, models.SchedulerResponse{
		Status:  "started",
		Message: "Scheduler started successfully",
	})
}

// StopScheduler stops the periodic sync loop.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Scheduler.Stop(); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, errorMessageSchedulerNotRunning)
			return
		}

		h.logError(r, "Failed to stop scheduler", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStopScheduler)
		return
	}

	render.JSON(w, r, models.SchedulerResponse{
		Status:  "stopped",
		Message: "Scheduler stopped successfully",
	})
}

// HealthCheck reports component health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := models.HealthResponse{
		Status:               health.Status,
		SchedulerStatus:      health.SchedulerStatus,
		DatabaseStatus:       health.DatabaseStatus,
		RedisStatus:          health.RedisStatus,
		ListenerStatus:       health.ListenerStatus,
		CircuitBreakerState:  health.CircuitBreakerState,
		CircuitBreakerStatus: health.CircuitBreakerStatus,
		Timestamp:            time.Now(),
	}

	if health.Status == service.HealthStatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// decodeAndValidate parses the JSON body into dst and checks its validation
// tags, writing the error response itself on failure.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, errorMessageInvalidPayload)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, errorMessageInvalidPayload)
		return false
	}

	return true
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	now := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, models.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: &now,
	})
}
