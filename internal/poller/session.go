// Package poller owns the periodic-refresh lifecycle for one data source:
// either the open conversation's messages or the conversation list. Ticks
// are strictly sequential within a session, and results of a stopped
// session are discarded via its token rather than applied.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	logger_lib "github.com/s21platform/logger-lib"
)

var ErrSessionActive = errors.New("polling session is already active")

// TickFunc runs one fetch-and-merge cycle. The token identifies the
// session generation that scheduled the tick; implementations must check
// Alive(token) before applying a fetched result, so a response landing
// after Stop is discarded instead of merged.
type TickFunc func(ctx context.Context, token uint64) error

type Session struct {
	name   string
	logger logger_lib.LoggerInterface

	mu     sync.Mutex
	active bool
	token  uint64
	cancel context.CancelFunc
	done   chan struct{}
}

func New(name string, logger logger_lib.LoggerInterface) *Session {
	return &Session{
		name:   name,
		logger: logger,
	}
}

// Start begins periodic ticking: once immediately, then every interval.
// A session polls one target at a time; the previous run must be fully
// stopped first, otherwise two timers could interleave their merges.
func (s *Session) Start(interval time.Duration, tick TickFunc) error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return ErrSessionActive
	}
	s.token++
	token := s.token
	ctx, cancel := context.WithCancel(context.Background())
	s.active = true
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	go s.loop(ctx, token, interval, tick, done)
	return nil
}

func (s *Session) loop(ctx context.Context, token uint64, interval time.Duration, tick TickFunc, done chan struct{}) {
	defer close(done)

	// Ticks run synchronously in this loop, so a new tick can never begin
	// while the previous fetch is still outstanding.
	s.runTick(ctx, token, tick)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runTick(ctx, token, tick)
		}
	}
}

func (s *Session) runTick(ctx context.Context, token uint64, tick TickFunc) {
	if ctx.Err() != nil {
		return
	}
	if err := tick(ctx, token); err != nil && !errors.Is(err, context.Canceled) {
		// Transient by assumption; the next tick retries naturally.
		if s.logger != nil {
			s.logger.Warn(fmt.Sprintf("%s poll tick failed: %v", s.name, err))
		}
	}
}

// Stop cancels the timer and any in-flight fetch, invalidates the session
// token and waits for the tick loop to exit. Safe to call repeatedly.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.token++
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done
}

// Alive reports whether the given token still belongs to the running
// session generation. A false result means the caller holds a stale
// response that must be discarded.
func (s *Session) Alive(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active && s.token == token
}

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
