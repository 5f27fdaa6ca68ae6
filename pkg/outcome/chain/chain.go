package chain

import (
	"context"

	"github.com/railkit/outcome/pkg/outcome"
	"github.com/railkit/outcome/pkg/outcome/solo"
)

// Chain wraps an Outcome with its context to enable fluent composition.
type Chain[T any] struct {
	ctx context.Context
	out outcome.Outcome[T]
}

// Start begins a chain from an existing outcome.
func Start[T any](ctx context.Context, out outcome.Outcome[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, out: out}
}

// From begins a chain from a success value.
func From[T any](ctx context.Context, v T) *Chain[T] {
	return &Chain[T]{ctx: ctx, out: outcome.Ok(v)}
}

// Outcome returns the underlying outcome.
func (c *Chain[T]) Outcome() outcome.Outcome[T] {
	return c.out
}

// Then binds a function that returns Outcome[U]. Free function because a
// method cannot introduce the new type parameter.
func Then[T, U any](c *Chain[T], f func(context.Context, T) outcome.Outcome[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		out: solo.Bind(c.ctx, c.out, f),
	}
}

// ThenTry binds a function that returns (U, error).
func ThenTry[T, U any](c *Chain[T], f func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		out: solo.Try(c.ctx, c.out, f),
	}
}

// Map binds a pure transformation.
func Map[T, U any](c *Chain[T], f func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		out: solo.Map(c.ctx, c.out, f),
	}
}

// Validate fails the chain when the predicate rejects the current value.
func (c *Chain[T]) Validate(pred func(context.Context, T) (bool, string)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		out: solo.Validate(c.ctx, c.out, pred),
	}
}

// Ensure runs a side effect on the success track without changing the
// outcome. On the failure track the effect never runs.
func (c *Chain[T]) Ensure(onOk func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		out: solo.Tee(c.ctx, c.out, onOk),
	}
}

// Finally collapses the chain into a final value via solo.Finally.
func Finally[T, U any](c *Chain[T],
	onOk func(context.Context, T) U,
	onErr func(context.Context, error) U,
	onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.out, onOk, onErr, onCancel)
}
