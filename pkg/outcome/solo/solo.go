package solo

import (
	"context"
	"errors"

	"github.com/railkit/outcome/pkg/outcome"
)

// Bind is the atomic composition primitive: if in is Err it passes through
// unchanged and f is never called, so no effect of f can occur on the
// failure track; if in is Ok, f decides the next outcome.
func Bind[In, Out any](ctx context.Context, in outcome.Outcome[In],
	f func(ctx context.Context, v In) outcome.Outcome[Out]) outcome.Outcome[Out] {

	if in.IsErr() {
		return outcome.ErrFrom[In, Out](in)
	}
	return f(ctx, in.Value())
}

// Map transforms the success value with a function that cannot fail.
func Map[In, Out any](ctx context.Context, in outcome.Outcome[In],
	f func(ctx context.Context, v In) Out) outcome.Outcome[Out] {

	if in.IsErr() {
		return outcome.ErrFrom[In, Out](in)
	}
	return outcome.Ok(f(ctx, in.Value()))
}

// MapError transforms the failure payload; Ok passes through untouched.
func MapError[T any](ctx context.Context, in outcome.Outcome[T],
	f func(ctx context.Context, err error) error) outcome.Outcome[T] {

	if in.IsOk() {
		return in
	}
	return outcome.Err[T](f(ctx, in.Err()))
}

// Try adapts a conventional (value, error) function. A context error from
// the function yields a cancellation outcome.
func Try[In, Out any](ctx context.Context, in outcome.Outcome[In],
	f func(ctx context.Context, v In) (Out, error)) outcome.Outcome[Out] {

	if in.IsErr() {
		return outcome.ErrFrom[In, Out](in)
	}

	v, err := f(ctx, in.Value())
	if err != nil {
		if outcome.IsCancellation(err) {
			return outcome.Cancel[Out](err)
		}
		return outcome.Err[Out](err)
	}
	return outcome.Ok(v)
}

// Validate fails with the predicate's message when it rejects the value.
func Validate[T any](ctx context.Context, in outcome.Outcome[T],
	pred func(ctx context.Context, v T) (valid bool, msg string)) outcome.Outcome[T] {

	if in.IsErr() {
		return in
	}

	if valid, msg := pred(ctx, in.Value()); !valid {
		return outcome.Err[T](errors.New(msg))
	}
	return in
}

// FailWith fails when f reports an error for the value, otherwise keeps it.
func FailWith[T any](ctx context.Context, in outcome.Outcome[T],
	f func(ctx context.Context, v T) error) outcome.Outcome[T] {

	if in.IsErr() {
		return in
	}

	if err := f(ctx, in.Value()); err != nil {
		return outcome.Err[T](err)
	}
	return in
}

// Tee runs a success-track side effect and returns the outcome unchanged.
// On the failure track the effect never runs.
func Tee[T any](ctx context.Context, in outcome.Outcome[T],
	effect func(ctx context.Context, v T)) outcome.Outcome[T] {

	if in.IsOk() {
		effect(ctx, in.Value())
	}
	return in
}

// TeeBoth runs a side effect on whichever track is active. Nil handlers
// are skipped.
func TeeBoth[T any](ctx context.Context, in outcome.Outcome[T],
	onOk func(ctx context.Context, v T),
	onErr func(ctx context.Context, err error)) outcome.Outcome[T] {

	if in.IsOk() {
		if onOk != nil {
			onOk(ctx, in.Value())
		}
	} else if onErr != nil {
		onErr(ctx, in.Err())
	}
	return in
}

// Finally collapses an outcome to a plain value with three-way dispatch:
// success, failure, or cancellation.
func Finally[In, Out any](ctx context.Context, in outcome.Outcome[In],
	onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if in.IsOk() {
		return onOk(ctx, in.Value())
	}
	if in.IsCancel() {
		return onCancel(ctx, in.Err())
	}
	return onErr(ctx, in.Err())
}
