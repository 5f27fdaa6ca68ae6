package stream

import (
	"context"
	"sync"

	"github.com/railkit/outcome/pkg/outcome"
	"github.com/railkit/outcome/pkg/outcome/solo"
)

// Run applies a same-type stage to every element of the input channel with
// workers goroutines. The output channel closes after all workers finish.
func Run[T any](ctx context.Context, in <-chan outcome.Outcome[T],
	stage Stage[T, T], workers int) <-chan outcome.Outcome[T] {
	return Through(ctx, in, stage, workers)
}

// Through applies a type-switching stage to every element of the input
// channel with workers goroutines. Per-element short-circuit semantics are
// the stage's own; fan-out only distributes elements.
func Through[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	stage Stage[In, Out], workers int) <-chan outcome.Outcome[Out] {

	if workers <= 0 {
		workers = Workers(ctx, 1)
	}

	out := make(chan outcome.Outcome[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go work(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// work is the per-worker loop: pull, apply, push, with cancellation checked
// at element boundaries. On cancellation the remaining queue is flushed as
// cancellation outcomes unless draining is disabled.
func work[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	out chan<- outcome.Outcome[Out], stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		if ctx.Err() != nil {
			flush(ctx, in, out)
			return
		}

		select {
		case <-ctx.Done():
			flush(ctx, in, out)
			return
		case v, ok := <-in:
			if !ok {
				return
			}

			out <- stage(ctx, v)
		}
	}
}

// flush converts queued inputs into cancellation outcomes so a cancelled
// run still yields one well-formed outcome per element.
func flush[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	out chan<- outcome.Outcome[Out]) {

	if !drainOnCancel(ctx, true) {
		return
	}

	for v := range in {
		if v.IsErr() {
			out <- outcome.ErrFrom[In, Out](v)
		} else {
			out <- outcome.Cancel[Out](ctx.Err())
		}
	}
}

// FinalHandlers collapses each element three ways, mirroring solo.Finally.
type FinalHandlers[In, Out any] struct {
	OnOk     func(ctx context.Context, v In) Out
	OnErr    func(ctx context.Context, err error) Out
	OnCancel func(ctx context.Context, err error) Out
}

// Finalize reduces every outcome on the channel to a plain value.
func Finalize[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	h FinalHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for v := range in {
			out <- solo.Finally(ctx, v, h.OnOk, h.OnErr, h.OnCancel)
		}
	}()

	return out
}
