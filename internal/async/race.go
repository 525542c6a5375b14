// Package async contains generic concurrency helpers shared by the
// multiplier lookups.
package async

import (
	"context"
	"time"
)

// Race runs op against a timer and returns whichever finishes first. The
// loser is cancelled through the derived context. An op that returns an
// error counts as no result, same as a timeout.
func Race[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, bool) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		v, err := op(ctx)
		done <- outcome{val: v, err: err}
	}()

	var zero T
	select {
	case out := <-done:
		if out.err != nil {
			return zero, false
		}
		return out.val, true
	case <-ctx.Done():
		return zero, false
	}
}
