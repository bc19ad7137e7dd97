// Package scheduler provides the periodic trigger for lead sync passes.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PassFunc is one scheduled unit of work, typically a full sync pass.
type PassFunc func(context.Context) error

// Scheduler runs a pass immediately on start and then on a fixed interval.
// Pass failures are logged and the loop keeps ticking; a dead upstream must
// not kill the schedule.
type Scheduler struct {
	logger   *zap.Logger
	interval time.Duration
	pass     PassFunc

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewScheduler creates a scheduler for the given pass function.
func NewScheduler(logger *zap.Logger, interval time.Duration, pass PassFunc) *Scheduler {
	return &Scheduler{
		logger:   logger,
		interval: interval,
		pass:     pass,
	}
}

// Start launches the loop. The first pass runs right away rather than waiting
// a full interval.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrSchedulerAlreadyRunning
	}

	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.loop(ctx, s.stopCh, s.doneCh)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop signals the loop and waits for the in-flight pass to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning reports whether the loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *Scheduler) loop(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled")
			return
		case <-stopCh:
			return
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

// runPass executes one pass under a deadline shorter than the interval so
// passes never overlap.
func (s *Scheduler) runPass(ctx context.Context) {
	deadline := s.interval - time.Second
	if deadline <= 0 {
		deadline = s.interval
	}

	passCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	if err := s.pass(passCtx); err != nil {
		s.logger.Error("Scheduled pass failed", zap.Error(err))
	}
}
