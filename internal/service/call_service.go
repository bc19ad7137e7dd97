package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/calltrack"
)

// ErrEventQueueFull signals that the call event buffer is saturated and the
// transition was rejected.
var ErrEventQueueFull = errors.New("call event queue is full")

const eventBufferSize = 256

// callService bridges pushed call-state transitions into the tracker. Events
// flow through one buffered channel drained by a single listener goroutine,
// which keeps transitions for the same number in arrival order.
type callService struct {
	listener *calltrack.Listener
	events   chan calltrack.Event
	logger   *zap.Logger
}

func NewCallService(tracker *calltrack.Tracker, logger *zap.Logger) CallService {
	return &callService{
		listener: calltrack.NewListener(tracker, logger),
		events:   make(chan calltrack.Event, eventBufferSize),
		logger:   logger,
	}
}

// Ingest queues one transition for processing. Rejecting on a full buffer is
// preferable to blocking the HTTP handler behind a stalled store.
func (s *callService) Ingest(ev calltrack.Event) error {
	select {
	case s.events <- ev:
		return nil
	default:
		s.logger.Error("Dropping call event, queue full",
			zap.String("state", string(ev.State)))
		return ErrEventQueueFull
	}
}

func (s *callService) Start() error {
	return s.listener.Start(s.events)
}

func (s *callService) Stop() error {
	return s.listener.Stop()
}

func (s *callService) IsRunning() bool {
	return s.listener.IsRunning()
}
