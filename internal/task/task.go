// Package task runs a function in the background and hands back a Handle
// the caller can wait on, with an optional completion callback.
package task

import "context"

// Handle is the result of one submitted function.
type Handle[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on its own goroutine. When fn returns, onDone (if non-nil)
// is called with its result, and only then is the handle marked done. A
// caller that waits on the handle therefore observes everything onDone did.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error), onDone func(T, error)) *Handle[T] {
	h := &Handle[T]{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.val, h.err = fn(ctx)
		if onDone != nil {
			onDone(h.val, h.err)
		}
	}()
	return h
}

// Done is closed once the function and its callback have returned.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the handle is done or ctx ends.
func (h *Handle[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-h.done:
		return h.val, h.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
