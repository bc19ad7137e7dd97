// Package calltrack converts raw call-state transitions from the device-side
// event source into finalized history rows.
package calltrack

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/phone"
	"github.com/adkhamov/leadbook/internal/repository"
)

// CallState is a raw transition emitted by the event source.
type CallState string

const (
	StateIncoming     CallState = "Incoming"
	StateOffHook      CallState = "OffHook"
	StateDisconnected CallState = "Disconnected"
)

// Direction markers carried on start events.
const (
	DirectionIncoming = "INCOMING"
	DirectionOutgoing = "OUTGOING"
)

// Event is one discrete call-state transition.
type Event struct {
	State  CallState
	Number string
	Type   string
}

// activeCall is the transient record of a call in progress, pending
// finalization. Never persisted.
type activeCall struct {
	start     time.Time
	direction string
}

// Tracker runs the per-number state machine: a number is idle until a start
// signal arrives, active until its Disconnected, then idle again once the
// finalized row is written. The active-call map is owned by the Tracker and
// keyed by normalized number.
type Tracker struct {
	history repository.HistoryRepository
	logger  *zap.Logger
	now     func() time.Time

	mu     sync.Mutex
	active map[string]*activeCall
}

// NewTracker creates a tracker writing finalized calls to the given history
// repository.
func NewTracker(history repository.HistoryRepository, logger *zap.Logger) *Tracker {
	return &Tracker{
		history: history,
		logger:  logger,
		now:     time.Now,
		active:  make(map[string]*activeCall),
	}
}

// SetClock overrides the time source. Tests use it to control durations.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// HandleEvent feeds one transition through the state machine. Events without
// a number are dropped. Persistence failures are logged and swallowed so the
// event loop keeps processing future calls.
func (t *Tracker) HandleEvent(ev Event) {
	num := phone.Normalize(ev.Number)
	if num == "" {
		t.logger.Debug("Dropping call event without number", zap.String("state", string(ev.State)))
		return
	}

	switch ev.State {
	case StateIncoming, StateOffHook:
		t.markActive(num, ev.Type)
	case StateDisconnected:
		t.finalize(num)
	default:
		t.logger.Debug("Ignoring unknown call state",
			zap.String("state", string(ev.State)),
			zap.String("number", num))
	}
}

// markActive records the start of a call. A second start signal for an
// already-active number is ignored, keeping the earliest start time.
func (t *Tracker) markActive(num, direction string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.active[num]; exists {
		return
	}

	dir := models.TypeIncoming
	if direction == DirectionOutgoing {
		dir = models.TypeOutgoing
	}

	t.active[num] = &activeCall{
		start:     t.now(),
		direction: dir,
	}
}

// finalize closes out the active call for num, classifying it by duration.
// A disconnect with no active entry (call rejected before any ring was
// observed) synthesizes a missed, zero-duration row.
func (t *Tracker) finalize(num string) {
	now := t.now()

	t.mu.Lock()
	call, exists := t.active[num]
	delete(t.active, num)
	t.mu.Unlock()

	date := now
	duration := int64(0)
	callType := models.TypeMissed

	if exists {
		date = call.start
		duration = int64(now.Sub(call.start).Seconds())
		if duration > 0 {
			callType = call.direction
		} else {
			duration = 0
		}
	}

	entry := &models.HistoryEntry{
		Phone:    num,
		Date:     date.UTC().Format(models.HistoryDateFormat),
		Duration: duration,
		Type:     callType,
	}

	if _, err := t.history.InsertHistory(entry); err != nil {
		t.logger.Error("Failed to persist finalized call",
			zap.String("number", num),
			zap.String("type", callType),
			zap.Int64("duration", duration),
			zap.Error(err))
		return
	}

	t.logger.Info("Call finalized",
		zap.String("number", num),
		zap.String("type", callType),
		zap.Int64("duration", duration))
}

// ActiveCount reports how many calls are currently in progress.
func (t *Tracker) ActiveCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}
