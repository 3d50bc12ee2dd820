// Package live keeps mounted node trees in sync with reactive attributes.
//
// Mount builds a dom.Node tree from a view. Static attributes are applied
// once. Fn attributes are bound through a reactive effect: every time a
// signal read by the thunk changes, the attribute is resolved again and the
// node is updated. Each change after the first is reported as a Patch to the
// Binder's Sink.
//
// Hub is a Sink that broadcasts patches as JSON to WebSocket clients:
//
//	hub := live.NewHub(nil)
//	binder := &live.Binder{Sink: hub}
//	root, err := binder.Mount(cx, v)
//	http.Handle("/live", hub)
package live
