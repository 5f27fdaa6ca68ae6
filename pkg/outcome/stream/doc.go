// Package stream runs outcomes for many independent inputs through channel
// stages with worker fan-out. Each element is processed synchronously by a
// stage (often a whole pipe.Pipeline via Binding(p.Run)); concurrency is
// across elements, so per-input step ordering and short-circuit semantics
// are untouched.
//
// A stage chain is built from the inside out:
//
//	results := Collect(
//		Finalize(ctx,
//			Through(ctx,
//				Run(ctx, Emit(ctx, inputs...), Validating(check), 4),
//				Trying(fetch), 4),
//			handlers))
//
// Cancellation is observed at element boundaries. By default a cancelled
// stage flushes its queued inputs as cancellation outcomes so every input
// is accounted for; WithDrainOnCancel(ctx, false) disables the flush.
package stream
