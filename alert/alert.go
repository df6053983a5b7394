// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package alert holds the single transient notification shown to a
// user, such as "post saved".  A Store is either hidden or visible;
// showing a notification makes it visible and schedules it to hide
// itself after a delay.
//
//     store := alert.New()
//     store.Subscribe(render)
//     alert.Toast(store, "Post created", alert.Success)
//
// Only one hide is ever pending.  Showing a new notification, or
// dismissing the current one, cancels the previous hide.
package alert

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultDelay is how long a notification stays visible.
const DefaultDelay = 3000 * time.Millisecond

// Severity is the visual style of a notification.
type Severity string

// Known severities.  Other values are accepted and passed through to
// the rendering layer unchanged.
const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
	Warning Severity = "warning"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case Success, Error, Info, Warning:
		return true
	}
	return false
}

// State is a snapshot of the store for rendering.
type State struct {
	Message  string
	Severity Severity
	Visible  bool
}

// Store holds the current notification.  It is safe for concurrent
// use; the auto-hide runs on the clock's own goroutine.
type Store struct {
	clock clock.Clock
	delay time.Duration

	mu    sync.Mutex
	state State
	timer *clock.Timer
	// generation increases each time the pending hide is replaced
	// or cancelled, so a hide that already fired can tell it is
	// stale.
	generation  uint64
	subscribers []func(State)
}

// New creates a hidden store on the wall clock with DefaultDelay.
func New() *Store {
	return NewWithClock(clock.New(), DefaultDelay)
}

// NewWithClock creates a hidden store with an explicit time source and
// auto-hide delay.  A delay of zero or less means DefaultDelay.
func NewWithClock(clk clock.Clock, delay time.Duration) *Store {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Store{
		clock: clk,
		delay: delay,
		state: State{Severity: Success},
	}
}

// Delay returns the auto-hide delay.
func (s *Store) Delay() time.Duration {
	return s.delay
}

// State returns the current notification.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with the new state after every
// change.  fn is called without the store locked, possibly from the
// clock's goroutine.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Show makes message visible with the given severity, replacing
// anything already shown.  An empty severity means Success.
func (s *Store) Show(message string, severity Severity) {
	if severity == "" {
		severity = Success
	}

	s.mu.Lock()
	s.cancelLocked()
	s.state = State{
		Message:  message,
		Severity: severity,
		Visible:  true,
	}
	generation := s.generation
	s.timer = s.clock.AfterFunc(s.delay, func() {
		s.expire(generation)
	})
	state, subscribers := s.snapshotLocked()
	s.mu.Unlock()

	notify(subscribers, state)
}

// Dismiss hides the notification immediately.  It does nothing if the
// store is already hidden.
func (s *Store) Dismiss() {
	s.mu.Lock()
	if !s.state.Visible {
		s.mu.Unlock()
		return
	}
	s.cancelLocked()
	s.state.Visible = false
	state, subscribers := s.snapshotLocked()
	s.mu.Unlock()

	notify(subscribers, state)
}

// expire is the auto-hide callback for the hide scheduled at
// generation.
func (s *Store) expire(generation uint64) {
	s.mu.Lock()
	if generation != s.generation || !s.state.Visible {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.generation++
	s.state.Visible = false
	state, subscribers := s.snapshotLocked()
	s.mu.Unlock()

	notify(subscribers, state)
}

// cancelLocked stops any pending hide.  s.mu must be held.
func (s *Store) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *Store) snapshotLocked() (State, []func(State)) {
	subscribers := make([]func(State), len(s.subscribers))
	copy(subscribers, s.subscribers)
	return s.state, subscribers
}

func notify(subscribers []func(State), state State) {
	for _, fn := range subscribers {
		fn(state)
	}
}

// Toast shows a notification on store.  This is the shortcut view code
// uses after an action completes.
func Toast(store *Store, message string, severity Severity) {
	store.Show(message, severity)
}
