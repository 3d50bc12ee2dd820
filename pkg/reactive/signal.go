package reactive

import (
	"reflect"
	"sync"
)

// source is anything an effect can depend on.
type source interface {
	unsubscribe(e *Effect)
}

// Signal is a reactive value container. Reading it with Get inside an
// effect subscribes that effect to later changes.
type Signal[T any] struct {
	id uint64

	mu    sync.RWMutex
	value T

	subMu sync.Mutex
	subs  []*Effect

	equal func(T, T) bool
}

// NewSignal creates a signal with the given initial value. Signals hold no
// resources, so the scope does not track them.
func NewSignal[T any](_ *Scope, initial T) *Signal[T] {
	return &Signal[T]{
		id:    nextID(),
		value: initial,
	}
}

// ID returns the unique identifier of the signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Get returns the current value and subscribes the current effect, if any.
func (s *Signal[T]) Get() T {
	// Subscribe before reading so a concurrent Set either sees the
	// subscription or happened before the read.
	if e := currentListener(); e != nil {
		s.subscribe(e)
		e.addSource(s)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores value and re-runs subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Update replaces the value with fn(current) and re-runs subscribers if it
// changed.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	old := s.value
	next := fn(old)
	changed := !s.equals(old, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// WithEquals sets a custom equality function used by Set and Update.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}

func (s *Signal[T]) subscribe(e *Effect) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, existing := range s.subs {
		if existing == e {
			return
		}
	}
	s.subs = append(s.subs, e)
}

func (s *Signal[T]) unsubscribe(e *Effect) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for i, existing := range s.subs {
		if existing == e {
			s.subs[i] = s.subs[len(s.subs)-1]
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// notify re-runs subscribers. The list is copied first because running an
// effect re-subscribes it.
func (s *Signal[T]) notify() {
	s.subMu.Lock()
	subs := make([]*Effect, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, e := range subs {
		e.MarkDirty()
	}
}
