package stream

import "context"

type optionKey string

const (
	workersKey optionKey = "stream_workers"
	drainKey   optionKey = "stream_drain_on_cancel"
)

// WithWorkers fixes the fan-out width for stages started under ctx.
func WithWorkers(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, workersKey, n)
}

// Workers returns the fan-out width from ctx, or def when unset.
func Workers(ctx context.Context, def int) int {
	if n, ok := ctx.Value(workersKey).(int); ok && n > 0 {
		return n
	}
	return def
}

// WithDrainOnCancel controls whether a cancelled stage flushes its queued
// inputs as cancellation outcomes (the default) or abandons them.
func WithDrainOnCancel(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, drainKey, drain)
}

func drainOnCancel(ctx context.Context, def bool) bool {
	if d, ok := ctx.Value(drainKey).(bool); ok {
		return d
	}
	return def
}
