package pipe

import (
	"context"
	"errors"

	"github.com/railkit/outcome/pkg/outcome"
	"github.com/railkit/outcome/pkg/outcome/solo"
)

// Step is the unary step contract: one input value, one outcome.
// Operations with more parameters are pre-bound into this shape before
// composition, by closing over their fixed arguments.
type Step[T any] func(ctx context.Context, v T) outcome.Outcome[T]

// Named attaches an identity to a step. When a named step fails, Run wraps
// the failure in a StepError carrying the name and the step's position.
func Named[T any](name string, s Step[T]) Step[T] {
	return func(ctx context.Context, v T) outcome.Outcome[T] {
		out := s(ctx, v)
		if out.IsErr() {
			var se *outcome.StepError
			if !errors.As(out.Err(), &se) {
				return outcome.Err[T](&outcome.StepError{Step: name, Index: -1, Err: out.Err()})
			}
		}
		return out
	}
}

// Pipeline is an immutable ordered sequence of steps. Construction and
// execution are decoupled: compose once, run many times. A Pipeline holds
// no mutable state, so concurrent Run calls with distinct inputs need no
// locking.
type Pipeline[T any] struct {
	steps []Step[T]
}

// Compose builds a pipeline from steps in declaration order. Composing
// zero steps yields the identity pipeline.
func Compose[T any](steps ...Step[T]) Pipeline[T] {
	p := Pipeline[T]{steps: make([]Step[T], len(steps))}
	copy(p.steps, steps)
	return p
}

// Len reports the number of composed steps.
func (p Pipeline[T]) Len() int {
	return len(p.steps)
}

// Run folds the input through the steps in order, switching to the failure
// track on the first Err: remaining steps are never invoked and the failure
// payload propagates unchanged. Cancellation is observed only at step
// boundaries and yields a well-formed cancellation outcome, never a
// partially executed step.
func (p Pipeline[T]) Run(ctx context.Context, input T) outcome.Outcome[T] {
	cur := outcome.Ok(input)

	for i, s := range p.steps {
		if cur.IsErr() {
			break
		}
		if err := ctx.Err(); err != nil {
			return outcome.Cancel[T](err)
		}

		cur = solo.Bind(ctx, cur, s)
		cur = attribute(cur, i)
	}
	return cur
}

// attribute fills in the position of a freshly failed named step. Failures
// that already carry a positioned StepError, and bare failures from unnamed
// steps, pass through exactly as the step returned them.
func attribute[T any](out outcome.Outcome[T], index int) outcome.Outcome[T] {
	if out.IsOk() {
		return out
	}

	var se *outcome.StepError
	if errors.As(out.Err(), &se) && se.Index < 0 {
		return outcome.Err[T](&outcome.StepError{Step: se.Step, Index: index, Err: se.Err})
	}
	return out
}
