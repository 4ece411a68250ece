package incremental

import (
	"context"
	"sync"
)

// frame accumulates the dependencies observed during one query
// computation: the highest "changed at" revision among them, the weakest
// (lowest) durability among them, and enough information to re-verify
// each one later without re-running the computation that produced it.
// Query.resolve stores the durability and the dependency list; it does
// not read changedAt, and stamps a recomputed value with the current
// revision unless it equals the cached one (early cutoff).
type frame struct {
	mu         sync.Mutex
	changedAt  Revision
	durability Durability
	deps       []depEdge
}

// depEdge is a closure over one dependency that, when invoked, ensures
// that dependency is up to date and reports its current (changedAt,
// durability). Calling probe always reuses the dependency's own
// memoization, so re-verifying a chain of dependencies costs nothing
// beyond what Get would have cost anyway.
type depEdge struct {
	probe func(ctx context.Context) (Revision, Durability)
}

func newFrame() *frame {
	return &frame{durability: High}
}

func (f *frame) record(changedAt Revision, durability Durability, probe func(context.Context) (Revision, Durability)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if changedAt > f.changedAt {
		f.changedAt = changedAt
	}
	f.durability = minDurability(f.durability, durability)
	f.deps = append(f.deps, depEdge{probe: probe})
}

type frameKey struct{}

// withFrame attaches f as the "current computation" on ctx. Passing a nil
// f detaches recording entirely, used while shallow-verifying a query's
// own previously recorded dependencies (those probes must not be
// attributed to whatever frame is active higher up the call stack).
func withFrame(ctx context.Context, f *frame) context.Context {
	return context.WithValue(ctx, frameKey{}, f)
}

func frameFrom(ctx context.Context) *frame {
	f, _ := ctx.Value(frameKey{}).(*frame)
	return f
}

// recordDep records a dependency on whatever frame is active in ctx, if
// any. It is a no-op outside of a query computation (e.g. a Snapshot
// method reading an Input directly).
func recordDep(ctx context.Context, changedAt Revision, durability Durability, probe func(context.Context) (Revision, Durability)) {
	if f := frameFrom(ctx); f != nil {
		f.record(changedAt, durability, probe)
	}
}
