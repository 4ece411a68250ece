package incremental

import (
	"context"
	"sync"
)

// Input is a leaf cell of the incremental system: a value the writer sets
// directly (file text, project membership) rather than one a Query
// derives. Every Query ultimately bottoms out at one or more Inputs.
type Input[T any] struct {
	eq func(a, b T) bool

	mu         sync.Mutex
	set        bool
	value      T
	changedAt  Revision
	durability Durability
}

// NewInput creates an Input. eq is used to decide, on each Set, whether
// the value actually changed (and so whether its changedAt revision
// should advance) — this is what lets a no-op edit (set the same text
// again) avoid invalidating anything downstream.
func NewInput[T any](eq func(a, b T) bool) *Input[T] {
	return &Input[T]{eq: eq}
}

// Set installs v as the Input's current value, at the given durability.
// It always bumps the Engine's revision counter (every write is globally
// ordered), but only advances this Input's own changedAt revision if v is
// not Eq to the previous value.
func (in *Input[T]) Set(e *Engine, v T, durability Durability) {
	done := e.beginWrite()
	defer done()

	rev := e.bumpRevision()

	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.set || !in.eq(in.value, v) {
		in.value = v
		in.changedAt = rev
	}
	in.set = true
	in.durability = durability
}

// Get returns the Input's current value, recording a dependency edge on
// whatever query computation is active in ctx.
func (in *Input[T]) Get(ctx context.Context, e *Engine) T {
	in.mu.Lock()
	v, changedAt, durability := in.value, in.changedAt, in.durability
	in.mu.Unlock()

	recordDep(ctx, changedAt, durability, func(context.Context) (Revision, Durability) {
		in.mu.Lock()
		defer in.mu.Unlock()
		return in.changedAt, in.durability
	})
	return v
}

// ChangedAt reports the revision at which this Input's value last
// actually changed (not merely was Set).
func (in *Input[T]) ChangedAt() Revision {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.changedAt
}
