package calltrack

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrListenerAlreadyStarted = errors.New("call listener is already started")
	ErrListenerNotStarted     = errors.New("call listener is not started")
)

// Listener consumes call events from a channel on a single goroutine, which
// preserves arrival order for transitions of the same number. It mirrors the
// startListening/stopListening contract of the device-side event source.
type Listener struct {
	tracker *Tracker
	logger  *zap.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewListener creates a listener feeding the given tracker.
func NewListener(tracker *Tracker, logger *zap.Logger) *Listener {
	return &Listener{
		tracker: tracker,
		logger:  logger,
	}
}

// Start begins draining events. The channel stays owned by the caller;
// closing it stops the loop as well.
func (l *Listener) Start(events <-chan Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return ErrListenerAlreadyStarted
	}

	l.running = true
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})

	go l.run(events, l.stopCh, l.doneCh)

	l.logger.Info("Call listener started")
	return nil
}

// Stop halts the event loop and waits for it to drain.
func (l *Listener) Stop() error {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return ErrListenerNotStarted
	}
	stopCh, doneCh := l.stopCh, l.doneCh
	l.mu.Unlock()

	close(stopCh)
	<-doneCh

	l.mu.Lock()
	l.running = false
	l.mu.Unlock()

	l.logger.Info("Call listener stopped")
	return nil
}

// IsRunning reports whether the event loop is active.
func (l *Listener) IsRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Listener) run(events <-chan Event, stopCh chan struct{}, doneCh chan struct{}) {
	defer close(doneCh)
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	for {
		select {
		case <-stopCh:
			return
		case ev, ok := <-events:
			if !ok {
				l.logger.Info("Call event channel closed")
				return
			}
			l.tracker.HandleEvent(ev)
		}
	}
}
