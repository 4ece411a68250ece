package incremental

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Compute is the function a Query memoizes. It must be pure in the inputs
// it reaches through ctx/e — same key, same Input values, same result.
// Cancellation is the only non-value exit: Compute should check
// ctx.Err() at the start of any non-trivial work and between lowering
// independent items, and simply return the zero value when cancelled
// (the caller discards it and propagates the context error).
type Compute[K comparable, V any] func(ctx context.Context, e *Engine, key K) V

// entry is a Query's memoized state for one key.
type entry[V any] struct {
	value      V
	changedAt  Revision // revision at which the output last actually differed
	computedAt Revision // revision at which Compute last actually ran
	verifiedAt Revision // revision up to which this entry is known to still be current
	durability Durability
	deps       []depEdge
}

// Query is a named, memoized, pure function over the Engine. Results are
// cached per key; Get re-verifies a cached entry's recorded dependencies
// before deciding whether to re-run Compute, and only advances the
// entry's changedAt revision if the freshly computed value is not Eq to
// what was cached — this is the engine's early-cutoff mechanism.
type Query[K comparable, V any] struct {
	name    string
	eq      func(a, b V) bool
	compute Compute[K, V]

	mu      sync.Mutex
	entries map[K]*entry[V]

	group singleflight.Group
}

// NewQuery creates a Query. eq is used for early cutoff; name is stored
// to identify the Query and does not affect caching (each Query has its
// own singleflight group, keyed by the key alone).
func NewQuery[K comparable, V any](name string, eq func(a, b V) bool, compute Compute[K, V]) *Query[K, V] {
	return &Query[K, V]{
		name:    name,
		eq:      eq,
		compute: compute,
		entries: make(map[K]*entry[V]),
	}
}

// Get returns the Query's value for key at the engine's current revision,
// recomputing (or shallow-reverifying) as needed, and records a
// dependency edge on whatever computation is active in ctx.
func (q *Query[K, V]) Get(ctx context.Context, e *Engine, key K) V {
	changedAt, durability, value := q.resolve(ctx, e, key)
	recordDep(ctx, changedAt, durability, func(probeCtx context.Context) (Revision, Durability) {
		c, d, _ := q.resolve(probeCtx, e, key)
		return c, d
	})
	return value
}

func (q *Query[K, V]) resolve(ctx context.Context, e *Engine, key K) (Revision, Durability, V) {
	rev := e.Revision()

	q.mu.Lock()
	ent, ok := q.entries[key]
	q.mu.Unlock()

	if ok && ent.verifiedAt == rev {
		return ent.changedAt, ent.durability, ent.value
	}

	if ok && q.shallowVerify(ctx, ent) {
		ent.verifiedAt = rev
		q.mu.Lock()
		q.entries[key] = ent
		q.mu.Unlock()
		return ent.changedAt, ent.durability, ent.value
	}

	// Recompute. singleflight collapses concurrent Get calls for the same
	// key into one Compute invocation, which is the natural Go idiom for
	// "many concurrent readers" without a full dependency-graph scheduler.
	type result struct {
		value      V
		changedAt  Revision
		durability Durability
	}
	raw, _, _ := q.group.Do(fmt.Sprintf("%v", key), func() (any, error) {
		f := newFrame()
		childCtx := withFrame(ctx, f)
		newVal := q.compute(childCtx, e, key)

		changedAt := rev
		if ok && q.eq(ent.value, newVal) {
			changedAt = ent.changedAt
		}

		if Cancelled(childCtx) {
			// Leave the previous entry (if any) untouched: a cancelled
			// computation commits no cache state, per spec.md §7.
			return result{newVal, changedAt, f.durability}, nil
		}

		newEnt := &entry[V]{
			value:      newVal,
			changedAt:  changedAt,
			computedAt: rev,
			verifiedAt: rev,
			durability: f.durability,
			deps:       f.deps,
		}
		q.mu.Lock()
		q.entries[key] = newEnt
		q.mu.Unlock()

		return result{newVal, changedAt, f.durability}, nil
	})
	r := raw.(result)
	return r.changedAt, r.durability, r.value
}

// shallowVerify checks whether every dependency recorded the last time
// ent.value was computed is still unchanged since then. If so, Compute
// does not need to run again — only ent.verifiedAt advances.
func (q *Query[K, V]) shallowVerify(ctx context.Context, ent *entry[V]) bool {
	verifyCtx := withFrame(ctx, nil) // detach: don't attribute these probes to an outer frame
	for _, dep := range ent.deps {
		changedAt, _ := dep.probe(verifyCtx)
		if changedAt > ent.computedAt {
			return false
		}
	}
	return true
}
