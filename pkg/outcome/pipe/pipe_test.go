package pipe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railkit/outcome/pkg/outcome"
)

func trim(_ context.Context, s string) outcome.Outcome[string] {
	return outcome.Ok(strings.TrimSpace(s))
}

func toUpper(_ context.Context, s string) outcome.Outcome[string] {
	return outcome.Ok(strings.ToUpper(s))
}

func toLower(_ context.Context, s string) outcome.Outcome[string] {
	return outcome.Ok(strings.ToLower(s))
}

func validateNonEmpty(_ context.Context, s string) outcome.Outcome[string] {
	if s == "" {
		return outcome.Err[string](errors.New("empty input"))
	}
	return outcome.Ok(s)
}

// counting wraps a step with an invocation counter for no-effect-on-skip
// assertions.
func counting[T any](n *int, s Step[T]) Step[T] {
	return func(ctx context.Context, v T) outcome.Outcome[T] {
		*n++
		return s(ctx, v)
	}
}

func TestRun_EmptyPipelineIsIdentity(t *testing.T) {
	t.Parallel()

	res := Compose[string]().Run(context.Background(), "anything")

	assert.True(t, res.IsOk())
	assert.Equal(t, "anything", res.Value())
}

func TestRun_SuccessComposition(t *testing.T) {
	t.Parallel()

	p := Compose(trim, toUpper)

	res := p.Run(context.Background(), "  bo  ")

	assert.True(t, res.IsOk())
	assert.Equal(t, "BO", res.Value())
}

func TestRun_ShortCircuitSkipsRemainingSteps(t *testing.T) {
	t.Parallel()

	trimCalls, upperCalls := 0, 0
	p := Compose(
		validateNonEmpty,
		counting(&trimCalls, trim),
		counting(&upperCalls, toUpper),
	)

	res := p.Run(context.Background(), "")

	assert.True(t, res.IsErr())
	assert.EqualError(t, res.Err(), "empty input")
	assert.Equal(t, 0, trimCalls, "steps after the failure must never run")
	assert.Equal(t, 0, upperCalls)
}

func TestRun_ErrorIdentityPreservedThroughSkippedStages(t *testing.T) {
	t.Parallel()

	cause := errors.New("step two failed")
	fail := func(_ context.Context, s string) outcome.Outcome[string] {
		return outcome.Err[string](cause)
	}

	p := Compose(trim, fail, toUpper, toLower)

	res := p.Run(context.Background(), "x")

	assert.True(t, res.IsErr())
	assert.Equal(t, cause, res.Err(), "skipped stages must not wrap or translate the error")
}

func TestRun_EquivalentToManualApplication(t *testing.T) {
	t.Parallel()

	p := Compose(trim, toLower, toUpper)
	input := "  MiXeD  "

	manual := strings.ToUpper(strings.ToLower(strings.TrimSpace(input)))
	res := p.Run(context.Background(), input)

	assert.Equal(t, manual, res.Value())
}

func TestRun_RepeatedAndConcurrentRuns(t *testing.T) {
	t.Parallel()

	p := Compose(trim, toUpper)

	// a pipeline is a value: each run is independent
	first := p.Run(context.Background(), " a ")
	second := p.Run(context.Background(), " b ")

	assert.Equal(t, "A", first.Value())
	assert.Equal(t, "B", second.Value())

	done := make(chan string, 2)
	for _, in := range []string{" x ", " y "} {
		in := in
		go func() { done <- p.Run(context.Background(), in).Value() }()
	}
	got := map[string]bool{<-done: true, <-done: true}
	assert.True(t, got["X"] && got["Y"])
}

func TestRun_NamedStepAttribution(t *testing.T) {
	t.Parallel()

	minLength := func(minLen int) Step[string] {
		return func(_ context.Context, s string) outcome.Outcome[string] {
			if len(s) < minLen {
				return outcome.Err[string](errors.New("too short"))
			}
			return outcome.Ok(s)
		}
	}

	p := Compose(
		Named("trim", trim),
		Named("lower", toLower),
		Named("min-length", minLength(3)),
	)

	res := p.Run(context.Background(), " Al ")

	require.True(t, res.IsErr())

	var se *outcome.StepError
	require.ErrorAs(t, res.Err(), &se)
	assert.Equal(t, "min-length", se.Step)
	assert.Equal(t, 2, se.Index)
	assert.EqualError(t, se.Err, "too short")
}

func TestRun_NamedStepOkAndBareErrUntouched(t *testing.T) {
	t.Parallel()

	cause := errors.New("bare failure")
	p := Compose(
		Named("trim", trim),
		func(_ context.Context, s string) outcome.Outcome[string] {
			return outcome.Err[string](cause)
		},
	)

	ok := Compose(Named("trim", trim)).Run(context.Background(), " v ")
	assert.Equal(t, "v", ok.Value())

	res := p.Run(context.Background(), "v")
	assert.Equal(t, cause, res.Err(), "unnamed steps propagate their error exactly")
}

func TestRun_NestedStepErrorNotRewrapped(t *testing.T) {
	t.Parallel()

	inner := Compose(Named("inner-check", validateNonEmpty))
	outerStep := func(ctx context.Context, s string) outcome.Outcome[string] {
		return inner.Run(ctx, s)
	}

	res := Compose(Named("outer", outerStep)).Run(context.Background(), "")

	var se *outcome.StepError
	require.ErrorAs(t, res.Err(), &se)
	assert.Equal(t, "inner-check", se.Step, "an already attributed failure keeps its source")
}

func TestRun_CancelledContextStopsAtStepBoundary(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	p := Compose(counting(&calls, trim))

	res := p.Run(ctx, " v ")

	assert.True(t, res.IsCancel())
	assert.Equal(t, 0, calls, "no step starts after cancellation")
}

func TestRun_ScenarioValidateTrimUpperOnEmpty(t *testing.T) {
	t.Parallel()

	trimCalls, upperCalls := 0, 0
	p := Compose(
		Named("validate-non-empty", validateNonEmpty),
		counting(&trimCalls, trim),
		counting(&upperCalls, toUpper),
	)

	res := p.Run(context.Background(), "")

	require.True(t, res.IsErr())
	assert.ErrorContains(t, res.Err(), "empty input")
	assert.Zero(t, trimCalls+upperCalls)

	var se *outcome.StepError
	require.ErrorAs(t, res.Err(), &se)
	assert.Equal(t, "validate-non-empty", se.Step)
	assert.Equal(t, 0, se.Index)
}

func TestLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Compose[string]().Len())
	assert.Equal(t, 2, Compose(trim, toUpper).Len())
}
