package signal

import (
	"fmt"
	"sync"
	"time"

	"github.com/arthur-debert/sigslot/pkg/errors"
	"github.com/arthur-debert/sigslot/pkg/slotmap"
)

// Void is the argument or result type of handlers that take or return nothing
type Void = struct{}

// Signal is an ordered registry of handlers sharing the shape func(A) R.
// The zero Signal is ready to use, unnamed and unobserved.
type Signal[A, R any] struct {
	mu       sync.RWMutex
	name     string
	observer Observer
	slots    slotmap.Map[func(A) R]
	closed   bool
}

// New creates an empty Signal
func New[A, R any](opts ...Option) *Signal[A, R] {
	o := options{observer: NopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Signal[A, R]{
		name:     o.name,
		observer: o.observer,
	}
}

// NewVoid creates a Signal whose handlers return nothing
func NewVoid[A any](opts ...Option) *Signal[A, Void] {
	return New[A, Void](opts...)
}

// Name returns the name given with WithName
func (s *Signal[A, R]) Name() string {
	return s.name
}

func (s *Signal[A, R]) obs() Observer {
	if s.observer == nil {
		return NopObserver{}
	}
	return s.observer
}

// TryConnect appends h to the handlers and returns the armed Connection
// controlling it. It fails if h is nil or the signal was closed.
func (s *Signal[A, R]) TryConnect(h func(A) R) (*Connection, error) {
	if h == nil {
		return nil, errors.New(errors.ErrInvalidInput, "handler cannot be nil").
			WithDetail("signal", s.name)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errors.Newf(errors.ErrSignalClosed, "signal %q is closed", s.name)
	}
	key := s.slots.Insert(h)
	size := s.slots.Len()
	s.mu.Unlock()

	s.obs().Connected(s.name, size)
	return newConnection(s, key), nil
}

// Connect is like TryConnect but panics on a nil handler or a closed signal,
// both of which are programming errors.
func (s *Signal[A, R]) Connect(h func(A) R) *Connection {
	conn, err := s.TryConnect(h)
	if err != nil {
		panic(fmt.Sprintf("failed to connect handler: %v", err))
	}
	return conn
}

// ConnectVoid connects a handler that returns nothing
func ConnectVoid[A any](s *Signal[A, Void], f func(A)) *Connection {
	var h func(A) Void
	if f != nil {
		h = func(args A) Void {
			f(args)
			return Void{}
		}
	}
	return s.Connect(h)
}

// Emit calls every handler in registration order, discarding results
func (s *Signal[A, R]) Emit(args A) {
	s.pass(args, nil)
}

// Collect calls every handler in registration order and returns their
// results, one per call, in the same order
func (s *Signal[A, R]) Collect(args A) []R {
	return s.CollectInto(make([]R, 0, s.Len()), args)
}

// CollectInto runs a pass like Collect, appending the results to dst
func (s *Signal[A, R]) CollectInto(dst []R, args A) []R {
	s.pass(args, func(r R) {
		dst = append(dst, r)
	})
	return dst
}

// CollectIf runs a pass like Collect but only keeps the results for which
// keep returns true. A nil keep keeps everything.
func (s *Signal[A, R]) CollectIf(keep func(R) bool, args A) []R {
	out := make([]R, 0)
	s.pass(args, func(r R) {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	})
	return out
}

// pass runs one invocation pass over the handlers registered when it
// starts, skipping those revoked before their turn.
func (s *Signal[A, R]) pass(args A, visit func(R)) int {
	start := time.Now()

	s.mu.RLock()
	keys := s.slots.Keys()
	s.mu.RUnlock()

	calls := 0
	for _, key := range keys {
		s.mu.RLock()
		h, ok := s.slots.Get(key)
		s.mu.RUnlock()
		if !ok {
			continue
		}

		r := h(args)
		calls++
		if visit != nil {
			visit(r)
		}
	}

	s.obs().Emitted(s.name, calls, time.Since(start))
	return calls
}

// HasSlots reports whether at least one handler is connected
func (s *Signal[A, R]) HasSlots() bool {
	return s.Len() > 0
}

// Len returns the number of connected handlers
func (s *Signal[A, R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.slots.Len()
}

// DisconnectAll removes every handler and returns how many were removed.
// Outstanding Connections become inert.
func (s *Signal[A, R]) DisconnectAll() int {
	s.mu.Lock()
	n := s.clear()
	s.mu.Unlock()

	if n > 0 {
		s.obs().Disconnected(s.name, 0)
	}
	return n
}

// Close removes every handler and refuses further connections. Closing an
// already closed signal does nothing.
func (s *Signal[A, R]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	n := s.clear()
	s.mu.Unlock()

	if n > 0 {
		s.obs().Disconnected(s.name, 0)
	}
	return nil
}

// Closed reports whether Close was called
func (s *Signal[A, R]) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}

// clear must be called with s.mu held
func (s *Signal[A, R]) clear() int {
	n := s.slots.Len()
	s.slots.Clear()
	return n
}

func (s *Signal[A, R]) revoke(key slotmap.Key) bool {
	s.mu.Lock()
	_, ok := s.slots.Remove(key)
	size := s.slots.Len()
	s.mu.Unlock()

	if ok {
		s.obs().Disconnected(s.name, size)
	}
	return ok
}

func (s *Signal[A, R]) owns(key slotmap.Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.slots.Contains(key)
}
