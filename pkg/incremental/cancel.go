package incremental

import "context"

// Cancelled reports whether ctx has been cancelled, either by
// Engine.RequestCancellation or by the Snapshot that owns ctx having been
// closed. Compute functions should check this at the suspension points
// spec.md §5 calls for — before doing non-trivial work in a fresh
// invocation, and between lowering independent items within one file —
// and return their zero value without doing further work when it's true.
// A cancelled Compute's result is never committed to the cache: resolve
// leaves any previous entry untouched, but still returns the value to
// Get, so a caller that sees ctx.Err() != nil after Get must discard the
// value rather than act on it.
func Cancelled(ctx context.Context) bool {
	return ctx.Err() != nil
}
