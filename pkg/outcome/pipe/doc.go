// Package pipe composes fallible unary steps into a single pipeline with
// deterministic short-circuit semantics.
//
// A Pipeline is a value: Compose builds it once, Run executes it against an
// input by left-folding solo.Bind over the steps starting from Ok(input).
// The first failing step switches execution to the failure track; no later
// step runs, and the failure payload reaches the caller unchanged. Steps
// wrapped with Named get StepError attribution (name and position) when
// they fail, so callers can report which operation rejected the input.
package pipe
