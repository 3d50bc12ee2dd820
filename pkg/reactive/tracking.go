package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state of one goroutine.
type trackingContext struct {
	// listener is the effect currently collecting dependencies.
	// nil means reads don't subscribe.
	listener *Effect
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// goroutineID parses the current goroutine ID out of the runtime stack header
// ("goroutine <id> [...").
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

func getTrackingContext() *trackingContext {
	gid := goroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}
	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// currentListener returns the effect tracking reads on this goroutine.
func currentListener() *Effect {
	return getTrackingContext().listener
}

// setCurrentListener installs e as the tracking effect and returns the
// previous one so it can be restored.
func setCurrentListener(e *Effect) *Effect {
	ctx := getTrackingContext()
	old := ctx.listener
	ctx.listener = e
	if e == nil {
		// A nil listener is the default, so the entry can go. Short-lived
		// goroutines then don't accumulate contexts.
		trackingContexts.Delete(goroutineID())
	}
	return old
}

// Untrack runs fn with dependency tracking disabled. Signals read inside fn
// do not subscribe the surrounding effect.
func Untrack(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}
