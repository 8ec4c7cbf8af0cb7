package walletstate

import (
	"sync"
	"time"
)

// DefaultErrorClearDelay is how long an error stays in the state before it is
// cleared automatically.
const DefaultErrorClearDelay = 10 * time.Second

// Listener observes state changes. Listeners run outside the store lock and
// may be called from the auto-clear timer goroutine.
type Listener func(State)

// Store owns the session State. Every change goes through Dispatch.
//
// A non-nil error is cleared automatically after the configured delay; a new
// error re-arms the timer.
type Store struct {
	mu         sync.Mutex
	state      State
	listeners  map[uint64]Listener
	nextID     uint64
	clearDelay time.Duration
	clearTimer *time.Timer
	errSeq     uint64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithErrorClearDelay sets how long an error stays in the state.
// Default: DefaultErrorClearDelay.
func WithErrorClearDelay(d time.Duration) StoreOption {
	return func(s *Store) {
		s.clearDelay = d
	}
}

// NewStore creates a Store holding the zero State.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		listeners:  make(map[uint64]Listener),
		clearDelay: DefaultErrorClearDelay,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Subscribe registers l for every subsequent change and returns a function
// that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.listeners, id)
	}
}

// Dispatch applies a to the state and notifies listeners.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	if setErr, ok := a.(SetError); ok {
		s.armErrorClear(setErr.Err != nil)
	}
	state, listeners := s.state, s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, state)
}

// armErrorClear replaces any pending auto-clear with a new one when arm is
// true. Callers must hold s.mu.
func (s *Store) armErrorClear(arm bool) {
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
	s.errSeq++

	if !arm {
		return
	}

	seq := s.errSeq
	s.clearTimer = time.AfterFunc(s.clearDelay, func() {
		s.clearError(seq)
	})
}

// clearError clears the error armed as seq, unless a newer one replaced it.
func (s *Store) clearError(seq uint64) {
	s.mu.Lock()
	if seq != s.errSeq || s.state.Err == nil {
		s.mu.Unlock()
		return
	}

	s.state = Reduce(s.state, SetError{})
	s.clearTimer = nil
	state, listeners := s.state, s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, state)
}

// Close stops the pending auto-clear, if any.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
	s.errSeq++
}

func (s *Store) snapshotListeners() []Listener {
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

func notify(listeners []Listener, state State) {
	for _, l := range listeners {
		l(state)
	}
}
