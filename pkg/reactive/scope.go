package reactive

import (
	"context"
	"sync"
	"sync/atomic"
)

// Scope is the reactive scope threaded through attribute and view
// conversion. It owns the effects created under it and any cleanups
// registered with OnCleanup.
//
// Scopes form a hierarchy: each view node that needs reactive state gets a
// child of its parent's scope. A nil *Scope is valid everywhere a scope is
// accepted; effects created without a scope live until disposed explicitly.
type Scope struct {
	id uint64

	// parent is nil for a root scope.
	parent *Scope

	// ctx is inherited from the parent when nil.
	ctx context.Context

	mu       sync.Mutex
	children []*Scope
	effects  []*Effect
	cleanups []func()

	disposed atomic.Bool
}

// NewScope creates a scope. If parent is non-nil the new scope is registered
// as its child and is disposed with it.
func NewScope(parent *Scope) *Scope {
	s := &Scope{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(s)
	}
	return s
}

// ID returns the unique identifier of the scope. A nil scope has ID 0.
func (s *Scope) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

// WithContext attaches ctx to the scope and returns the scope. Child scopes
// inherit it. Spans started during conversion use it as their parent.
func (s *Scope) WithContext(ctx context.Context) *Scope {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()
	return s
}

// Context returns the nearest context attached to s or one of its
// ancestors, or context.Background().
func (s *Scope) Context() context.Context {
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		ctx := cur.ctx
		cur.mu.Unlock()
		if ctx != nil {
			return ctx
		}
	}
	return context.Background()
}

// Child creates a new scope owned by s.
func (s *Scope) Child() *Scope {
	return NewScope(s)
}

// IsDisposed reports whether Dispose has been called.
func (s *Scope) IsDisposed() bool {
	return s != nil && s.disposed.Load()
}

// OnCleanup registers fn to run when the scope is disposed. On an already
// disposed scope fn runs immediately.
func (s *Scope) OnCleanup(fn func()) {
	if s == nil {
		return
	}
	if s.disposed.Load() {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanups = append(s.cleanups, fn)
}

// Dispose tears the scope down: children first, then effects, then cleanups
// in reverse registration order. Dispose is idempotent.
func (s *Scope) Dispose() {
	if s == nil || s.disposed.Swap(true) {
		return
	}

	s.mu.Lock()
	children := s.children
	effects := s.effects
	cleanups := s.cleanups
	s.children, s.effects, s.cleanups = nil, nil, nil
	s.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for _, e := range effects {
		e.Dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	if s.parent != nil {
		s.parent.removeChild(s)
	}
}

func (s *Scope) addChild(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.children = append(s.children, child)
}

func (s *Scope) removeChild(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// registerEffect adds e to the scope. It reports false if the scope is
// already disposed.
func (s *Scope) registerEffect(e *Effect) bool {
	if s.disposed.Load() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.effects = append(s.effects, e)
	return true
}
