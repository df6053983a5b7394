// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package alert

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

// recorder collects the states a store publishes.
type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) Record(state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *recorder) States() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}

// Hides counts published states that are not visible.
func (r *recorder) Hides() int {
	n := 0
	for _, state := range r.States() {
		if !state.Visible {
			n++
		}
	}
	return n
}

func newStore() (*Store, *clock.Mock, *recorder) {
	mock := clock.NewMock()
	store := NewWithClock(mock, DefaultDelay)
	rec := &recorder{}
	store.Subscribe(rec.Record)
	return store, mock, rec
}

func eventuallyHidden(t *testing.T, store *Store) bool {
	return assert.Eventually(t, func() bool {
		return !store.State().Visible
	}, time.Second, time.Millisecond)
}

func TestInitialState(t *testing.T) {
	store := New()
	assert.Equal(t, State{Severity: Success}, store.State())
	assert.Equal(t, 3*time.Second, store.Delay())
	assert.False(t, store.pending())
}

func TestShowDefaultsToSuccess(t *testing.T) {
	store, _, rec := newStore()
	store.Show("hi", "")
	assert.Equal(t, State{Message: "hi", Severity: Success, Visible: true}, store.State())
	assert.Equal(t, []State{store.State()}, rec.States())
	assert.True(t, store.pending())
}

func TestAutoHide(t *testing.T) {
	store, mock, rec := newStore()
	store.Show("saved", Info)

	mock.Add(2999 * time.Millisecond)
	assert.True(t, store.State().Visible)

	mock.Add(time.Millisecond)
	if eventuallyHidden(t, store) {
		state := store.State()
		assert.Equal(t, "saved", state.Message)
		assert.Equal(t, Info, state.Severity)
		assert.Equal(t, 1, rec.Hides())
		assert.False(t, store.pending())
	}
}

func TestShowReplacesPendingHide(t *testing.T) {
	store, mock, rec := newStore()
	store.Show("a", Warning)
	mock.Add(2 * time.Second)
	store.Show("b", Error)

	// The first show's deadline passes without effect.
	mock.Add(2 * time.Second)
	assert.Equal(t, State{Message: "b", Severity: Error, Visible: true}, store.State())
	assert.Equal(t, 0, rec.Hides())

	mock.Add(999 * time.Millisecond)
	assert.True(t, store.State().Visible)

	mock.Add(time.Millisecond)
	if eventuallyHidden(t, store) {
		assert.Equal(t, "b", store.State().Message)
	}

	// No second hide arrives later.
	mock.Add(10 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, rec.Hides())
}

func TestDismiss(t *testing.T) {
	store, mock, rec := newStore()
	store.Show("bye", Success)
	store.Dismiss()
	assert.False(t, store.State().Visible)
	assert.False(t, store.pending())
	assert.Equal(t, 1, rec.Hides())

	mock.Add(10 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 1, rec.Hides())
}

func TestDismissWhileHidden(t *testing.T) {
	store, _, rec := newStore()
	before := store.State()
	store.Dismiss()
	assert.Equal(t, before, store.State())
	assert.Empty(t, rec.States())
}

func TestStaleExpire(t *testing.T) {
	store, _, _ := newStore()
	store.Show("first", Info)
	stale := store.generation
	store.Show("second", Info)
	store.expire(stale)
	assert.Equal(t, State{Message: "second", Severity: Info, Visible: true}, store.State())
	assert.True(t, store.pending())
}

func TestToast(t *testing.T) {
	store, mock, _ := newStore()
	Toast(store, "Post deleted", Error)
	assert.Equal(t, State{Message: "Post deleted", Severity: Error, Visible: true}, store.State())
	mock.Add(DefaultDelay)
	eventuallyHidden(t, store)
}

func TestCustomDelay(t *testing.T) {
	mock := clock.NewMock()
	store := NewWithClock(mock, 500*time.Millisecond)
	store.Show("quick", "")
	mock.Add(500 * time.Millisecond)
	eventuallyHidden(t, store)
}

func TestSeverityValid(t *testing.T) {
	for _, severity := range []Severity{Success, Error, Info, Warning} {
		assert.True(t, severity.Valid(), string(severity))
	}
	assert.False(t, Severity("").Valid())
	assert.False(t, Severity("danger").Valid())
}
