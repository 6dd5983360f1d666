package fsa

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Store holds a state value and folds dispatched messages into it with a
// reducer.
//
// Usage:
//  1. Build a reducer with MakeActionReducer or MakeActionReducers
//  2. Create a store with NewStore
//  3. Dispatch messages with Dispatch, or raw JSON with Process
//
// Store is safe for concurrent use. Dispatches are serialized; listeners run
// after the store lock is released, so a listener may dispatch. Listeners
// are notified in subscription order. Notifications from concurrent
// Dispatch calls may interleave, so a listener can observe an older state
// after a newer one; read State for the latest value.
type Store[S any] struct {
	cfg     storeConfig
	reducer Reducer[S]

	mu        sync.RWMutex
	state     S
	listeners []listener[S]
	nextID    int
}

type listener[S any] struct {
	id int
	fn func(S)
}

// NewStore creates a Store starting from initial.
func NewStore[S any](reducer Reducer[S], initial S, opts ...StoreOption) *Store[S] {
	cfg := storeConfig{
		logger:    slog.Default(),
		inspector: JSONInspector(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if reducer == nil {
		reducer = ReduceReducers[S]()
	}
	return &Store[S]{
		cfg:     cfg,
		reducer: reducer,
		state:   initial,
	}
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called with the new state after every
// dispatch. The returned function removes the listener.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener[S]{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener[S]) bool { return l.id == id })
	}
}

// Dispatch reduces msg into the store and returns the resulting state.
func (s *Store[S]) Dispatch(ctx context.Context, msg Message) S {
	for _, fn := range s.cfg.hooks.onDispatch {
		ctx = fn(ctx, msg)
	}
	s.cfg.logger.DebugContext(ctx, "fsa: dispatch", "type", msg.Type, "error", msg.Error)

	start := time.Now()
	next, listeners := s.reduce(msg)
	duration := time.Since(start)

	for _, fn := range s.cfg.hooks.onReduce {
		fn(ctx, msg, duration)
	}
	for _, l := range listeners {
		l.fn(next)
	}
	return next
}

// reduce applies the reducer under the lock and snapshots the listeners.
// A panicking reducer leaves the state unchanged and the store usable.
func (s *Store[S]) reduce(msg Message) (S, []listener[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.reducer(s.state, msg)
	return s.state, slices.Clone(s.listeners)
}

// Process decodes raw input into a Message and dispatches it.
//
// The processing flow:
//  1. Inspect raw with the configured Inspector
//  2. Check the Standard shape and any WithDiscriminator gate
//  3. Decode the message
//  4. Dispatch it
//
// Rejected input goes to the OnInvalid hooks. Without hooks, Process returns
// the rejection error; with hooks, the first hook error wins and nil skips.
// Either way the state is left unchanged.
func (s *Store[S]) Process(ctx context.Context, raw []byte) (S, error) {
	view, err := s.cfg.inspector.Inspect(raw)
	if err != nil {
		return s.handleInvalid(ctx, raw, err)
	}
	if s.cfg.discriminator != nil && !s.cfg.discriminator.Match(view) {
		return s.handleInvalid(ctx, raw, fmt.Errorf("%w: rejected by discriminator", ErrNotStandard))
	}
	msg, err := DecodeView(view)
	if err != nil {
		return s.handleInvalid(ctx, raw, err)
	}
	return s.Dispatch(ctx, msg), nil
}

// handleInvalid handles input Process could not accept.
func (s *Store[S]) handleInvalid(ctx context.Context, raw []byte, cause error) (S, error) {
	s.cfg.logger.WarnContext(ctx, "fsa: rejected message", "err", cause, "bytes", len(raw))

	state := s.State()
	for _, fn := range s.cfg.hooks.onInvalid {
		if err := fn(ctx, raw, cause); err != nil {
			return state, err
		}
	}
	if len(s.cfg.hooks.onInvalid) > 0 {
		return state, nil
	}
	return state, fmt.Errorf("process message: %w", cause)
}
