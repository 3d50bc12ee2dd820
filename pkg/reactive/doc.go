// Package reactive provides the reactive scope used when converting values
// into attributes and views.
//
// A Scope owns the effects created under it. Scopes form a tree that mirrors
// the view tree: disposing a scope disposes its children, stops its effects,
// and runs its cleanups.
//
// Signal[T] is a reactive value container. Reading a signal inside an Effect
// subscribes that effect; writing the signal re-runs every subscriber
// synchronously on the writer's goroutine:
//
//	cx := reactive.NewScope(nil)
//	count := reactive.NewSignal(cx, 0)
//	reactive.CreateEffect(cx, func() reactive.Cleanup {
//	    fmt.Println("count is", count.Get())
//	    return nil
//	})
//	count.Set(1) // prints "count is 1"
//
// Dependency tracking is per goroutine, so a signal read on another
// goroutine never subscribes an effect that happens to be running here.
package reactive
