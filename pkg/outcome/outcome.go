package outcome

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCanceled marks an Outcome whose failure track was entered because the
// run was cancelled rather than because a step rejected its input.
var ErrCanceled = errors.New("run cancelled")

// Outcome is a tagged value that is exactly one of Ok or Err.
// It is immutable: combinators always construct a fresh Outcome.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

// Ok wraps a success value.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		ok:        true,
	}
}

// Err wraps a failure payload. The payload is opaque to the pipeline and is
// propagated unchanged through every skipped stage.
func Err[T any](err error) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

// Cancel wraps a cancellation as a failure. The payload is guaranteed to
// satisfy IsCancel; err is wrapped with ErrCanceled unless it already is a
// cancellation error.
func Cancel[T any](err error) Outcome[T] {
	if err == nil {
		err = ErrCanceled
	} else if !IsCancellation(err) {
		err = errors.Join(ErrCanceled, err)
	}
	return Err[T](err)
}

// ErrFrom carries a failure across a type switch. The payload, id and
// creation time of the source pass through untouched; calling it on an Ok
// outcome is a programming error and yields an Err describing that.
func ErrFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	if from.ok {
		return Err[Out](errors.New("outcome: ErrFrom called on Ok"))
	}
	return Outcome[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
	}
}

// Value returns the success value; zero when the outcome is Err.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the failure payload; nil when the outcome is Ok.
func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsOk() bool {
	return o.ok
}

func (o Outcome[T]) IsErr() bool {
	return !o.ok
}

// IsCancel reports whether the failure payload is a cancellation.
func (o Outcome[T]) IsCancel() bool {
	return !o.ok && IsCancellation(o.err)
}

func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

// CreatedAt is the UTC construction time.
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

// IsCancellation reports whether err carries ErrCanceled or a context error.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
