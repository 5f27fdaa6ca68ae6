package stream

import (
	"context"

	"github.com/railkit/outcome/pkg/outcome"
)

// Emit feeds values into a channel of success outcomes, closing it after
// the last value or as soon as ctx is done.
func Emit[T any](ctx context.Context, values ...T) <-chan outcome.Outcome[T] {
	out := make(chan outcome.Outcome[T])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- outcome.Ok(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains a channel into a slice. It reads until the channel
// closes; cancellation reaches it through the stages upstream, which close
// their outputs after flushing.
func Collect[T any](in <-chan T) []T {
	res := make([]T, 0)
	for v := range in {
		res = append(res, v)
	}
	return res
}

// First returns the first element of the channel, or def when the channel
// closes or ctx is done before one arrives.
func First[T any](ctx context.Context, in <-chan T, def T) T {
	select {
	case v, ok := <-in:
		if !ok {
			return def
		}
		return v
	case <-ctx.Done():
		return def
	}
}
