package calltrack_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/adkhamov/leadbook/internal/calltrack"
	"github.com/adkhamov/leadbook/internal/models"
	"github.com/adkhamov/leadbook/internal/repository/mocks"
)

// fakeClock hands the tracker a controllable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(t *testing.T) (*calltrack.Tracker, *mocks.MockHistoryRepository, *fakeClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	history := mocks.NewMockHistoryRepository(ctrl)

	tracker := calltrack.NewTracker(history, zap.NewNop())
	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	tracker.SetClock(clock.Now)

	return tracker, history, clock
}

func TestTracker_CompletedCalls(t *testing.T) {
	tests := []struct {
		name         string
		startState   calltrack.CallState
		startType    string
		talkTime     time.Duration
		wantType     string
		wantDuration int64
	}{
		{
			name:         "answered incoming call",
			startState:   calltrack.StateIncoming,
			startType:    calltrack.DirectionIncoming,
			talkTime:     5 * time.Second,
			wantType:     models.TypeIncoming,
			wantDuration: 5,
		},
		{
			name:         "answered outgoing call",
			startState:   calltrack.StateOffHook,
			startType:    calltrack.DirectionOutgoing,
			talkTime:     42 * time.Second,
			wantType:     models.TypeOutgoing,
			wantDuration: 42,
		},
		{
			name:         "zero duration is a missed call",
			startState:   calltrack.StateIncoming,
			startType:    calltrack.DirectionIncoming,
			talkTime:     0,
			wantType:     models.TypeMissed,
			wantDuration: 0,
		},
		{
			name:         "sub-second call rounds down to missed",
			startState:   calltrack.StateOffHook,
			startType:    calltrack.DirectionOutgoing,
			talkTime:     400 * time.Millisecond,
			wantType:     models.TypeMissed,
			wantDuration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, history, clock := newTestTracker(t)
			start := clock.Now()

			var got *models.HistoryEntry
			history.EXPECT().
				InsertHistory(gomock.Any()).
				DoAndReturn(func(entry *models.HistoryEntry) (int64, error) {
					got = entry
					return 1, nil
				})

			tracker.HandleEvent(calltrack.Event{State: tt.startState, Number: "+1 (555) 010-2233", Type: tt.startType})
			assert.Equal(t, 1, tracker.ActiveCount())

			clock.Advance(tt.talkTime)
			tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "15550102233"})

			require.NotNil(t, got)
			assert.Equal(t, "15550102233", got.Phone)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantDuration, got.Duration)
			assert.Equal(t, start.Format(models.HistoryDateFormat), got.Date)
			assert.Equal(t, 0, tracker.ActiveCount())
		})
	}
}

func TestTracker_LoneDisconnectIsMissed(t *testing.T) {
	tracker, history, clock := newTestTracker(t)

	var got *models.HistoryEntry
	history.EXPECT().
		InsertHistory(gomock.Any()).
		DoAndReturn(func(entry *models.HistoryEntry) (int64, error) {
			got = entry
			return 1, nil
		})

	tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "5550104455"})

	require.NotNil(t, got)
	assert.Equal(t, models.TypeMissed, got.Type)
	assert.Equal(t, int64(0), got.Duration)
	assert.Equal(t, clock.Now().Format(models.HistoryDateFormat), got.Date)
}

func TestTracker_DuplicateStartKeepsEarliestTime(t *testing.T) {
	tracker, history, clock := newTestTracker(t)
	start := clock.Now()

	var got *models.HistoryEntry
	history.EXPECT().
		InsertHistory(gomock.Any()).
		DoAndReturn(func(entry *models.HistoryEntry) (int64, error) {
			got = entry
			return 1, nil
		})

	tracker.HandleEvent(calltrack.Event{State: calltrack.StateIncoming, Number: "5550104455", Type: calltrack.DirectionIncoming})
	clock.Advance(3 * time.Second)
	// Ring followed by pickup arrives as a second start signal.
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateOffHook, Number: "5550104455", Type: calltrack.DirectionOutgoing})
	assert.Equal(t, 1, tracker.ActiveCount())

	clock.Advance(7 * time.Second)
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "5550104455"})

	require.NotNil(t, got)
	assert.Equal(t, models.TypeIncoming, got.Type)
	assert.Equal(t, int64(10), got.Duration)
	assert.Equal(t, start.Format(models.HistoryDateFormat), got.Date)
}

func TestTracker_DropsEventsWithoutNumber(t *testing.T) {
	tracker, history, _ := newTestTracker(t)

	// No InsertHistory expectation: nothing should be written.
	_ = history

	tracker.HandleEvent(calltrack.Event{State: calltrack.StateIncoming, Number: ""})
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "   "})
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "ext."})

	assert.Equal(t, 0, tracker.ActiveCount())
}

func TestTracker_OverlappingCallsStayIndependent(t *testing.T) {
	tracker, history, clock := newTestTracker(t)

	entries := make(map[string]*models.HistoryEntry)
	history.EXPECT().
		InsertHistory(gomock.Any()).
		DoAndReturn(func(entry *models.HistoryEntry) (int64, error) {
			entries[entry.Phone] = entry
			return 1, nil
		}).
		Times(2)

	tracker.HandleEvent(calltrack.Event{State: calltrack.StateIncoming, Number: "5550100001", Type: calltrack.DirectionIncoming})
	clock.Advance(2 * time.Second)
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateOffHook, Number: "5550100002", Type: calltrack.DirectionOutgoing})
	assert.Equal(t, 2, tracker.ActiveCount())

	clock.Advance(4 * time.Second)
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "5550100001"})
	clock.Advance(1 * time.Second)
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "5550100002"})

	require.Len(t, entries, 2)
	assert.Equal(t, int64(6), entries["5550100001"].Duration)
	assert.Equal(t, models.TypeIncoming, entries["5550100001"].Type)
	assert.Equal(t, int64(5), entries["5550100002"].Duration)
	assert.Equal(t, models.TypeOutgoing, entries["5550100002"].Type)
}

func TestTracker_PersistFailureDoesNotWedgeTheNumber(t *testing.T) {
	tracker, history, clock := newTestTracker(t)

	history.EXPECT().
		InsertHistory(gomock.Any()).
		Return(int64(0), errors.New("database is locked"))

	tracker.HandleEvent(calltrack.Event{State: calltrack.StateIncoming, Number: "5550104455", Type: calltrack.DirectionIncoming})
	clock.Advance(3 * time.Second)
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "5550104455"})

	// The failed write is dropped; a fresh call on the number still works.
	var got *models.HistoryEntry
	history.EXPECT().
		InsertHistory(gomock.Any()).
		DoAndReturn(func(entry *models.HistoryEntry) (int64, error) {
			got = entry
			return 2, nil
		})

	tracker.HandleEvent(calltrack.Event{State: calltrack.StateIncoming, Number: "5550104455", Type: calltrack.DirectionIncoming})
	clock.Advance(8 * time.Second)
	tracker.HandleEvent(calltrack.Event{State: calltrack.StateDisconnected, Number: "5550104455"})

	require.NotNil(t, got)
	assert.Equal(t, int64(8), got.Duration)
}
