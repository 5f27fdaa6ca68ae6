package stream

import (
	"context"

	"github.com/railkit/outcome/pkg/outcome"
	"github.com/railkit/outcome/pkg/outcome/solo"
)

// Stage processes one outcome synchronously. Workers apply the stage to
// each element in isolation; concurrency is across elements, never inside
// one element's processing.
type Stage[In, Out any] func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out]

// Validating lifts a predicate into a stage.
func Validating[T any](pred func(ctx context.Context, v T) (bool, string)) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
		return solo.Validate(ctx, in, pred)
	}
}

// Binding lifts an outcome-returning function into a stage. A whole
// pipeline fits here directly: Binding(p.Run).
func Binding[In, Out any](f func(ctx context.Context, v In) outcome.Outcome[Out]) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return solo.Bind(ctx, in, f)
	}
}

// Mapping lifts a pure transformation into a stage.
func Mapping[In, Out any](f func(ctx context.Context, v In) Out) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return solo.Map(ctx, in, f)
	}
}

// Trying lifts a (value, error) function into a stage.
func Trying[In, Out any](f func(ctx context.Context, v In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return solo.Try(ctx, in, f)
	}
}

// Teeing lifts a success-track side effect into a stage.
func Teeing[T any](effect func(ctx context.Context, v T)) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
		return solo.Tee(ctx, in, effect)
	}
}
