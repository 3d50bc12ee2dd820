package reactive

import (
	"sync"
	"sync/atomic"
)

// Cleanup is returned by an effect function. It runs before the effect
// re-runs and when the effect is disposed.
type Cleanup func()

// Effect is a side effect that re-runs whenever a signal it read during its
// last run changes. Re-runs happen synchronously on the goroutine that
// wrote the signal; a write that arrives while the effect is already running
// schedules exactly one more run.
type Effect struct {
	id uint64
	fn func() Cleanup

	cleanup Cleanup

	sourcesMu sync.Mutex
	sources   []source

	mu      sync.Mutex
	running bool
	dirty   bool

	disposed atomic.Bool
}

// CreateEffect creates an effect owned by cx and runs it immediately.
// If cx is already disposed the effect still runs once but is not tracked.
func CreateEffect(cx *Scope, fn func() Cleanup) *Effect {
	e := &Effect{
		id: nextID(),
		fn: fn,
	}
	if cx != nil && !cx.registerEffect(e) {
		e.runOnce()
		e.Dispose()
		return e
	}
	e.run()
	return e
}

// ID returns the unique identifier of the effect.
func (e *Effect) ID() uint64 {
	return e.id
}

// MarkDirty schedules the effect to re-run.
func (e *Effect) MarkDirty() {
	e.run()
}

// IsDisposed reports whether the effect has been stopped.
func (e *Effect) IsDisposed() bool {
	return e.disposed.Load()
}

// Dispose stops the effect, runs its last cleanup and drops all
// subscriptions.
func (e *Effect) Dispose() {
	if e.disposed.Swap(true) {
		return
	}
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.dropSources()
}

func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}

	e.mu.Lock()
	if e.running {
		e.dirty = true
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()

	for {
		e.runOnce()

		e.mu.Lock()
		if !e.dirty || e.disposed.Load() {
			e.running = false
			e.dirty = false
			e.mu.Unlock()
			return
		}
		e.dirty = false
		e.mu.Unlock()
	}
}

func (e *Effect) runOnce() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.dropSources()

	old := setCurrentListener(e)
	defer setCurrentListener(old)

	e.cleanup = e.fn()
}

func (e *Effect) addSource(s source) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()
	for _, existing := range e.sources {
		if existing == s {
			return
		}
	}
	e.sources = append(e.sources, s)
}

func (e *Effect) dropSources() {
	e.sourcesMu.Lock()
	sources := e.sources
	e.sources = nil
	e.sourcesMu.Unlock()

	for _, s := range sources {
		s.unsubscribe(e)
	}
}
