// Package chflow holds channel helpers that give up when a context ends.
package chflow

import "context"

// Receive returns the next value from ch. ok is false when ctx is done first
// or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Forward calls fn with every value received from ch until ctx is done or ch
// is closed.
func Forward[T any](ctx context.Context, ch <-chan T, fn func(T)) {
	for {
		data, ok := Receive(ctx, ch)
		if !ok {
			return
		}

		fn(data)
	}
}
