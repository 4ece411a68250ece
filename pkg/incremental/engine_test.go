package incremental_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyyu2004/gqls/pkg/incremental"
)

func eqString(a, b string) bool { return a == b }
func eqInt(a, b int) bool       { return a == b }

func TestInputEarlyCutoffOnNoOpSet(t *testing.T) {
	e := incremental.New()
	in := incremental.NewInput(eqString)

	in.Set(e, "a", incremental.Low)
	firstChanged := in.ChangedAt()

	in.Set(e, "a", incremental.Low) // same value: revision still bumps, changedAt should not
	assert.Equal(t, firstChanged, in.ChangedAt())

	in.Set(e, "b", incremental.Low)
	assert.NotEqual(t, firstChanged, in.ChangedAt())
}

func TestQueryRecomputesOnlyWhenInputChanges(t *testing.T) {
	e := incremental.New()
	in := incremental.NewInput(eqString)
	in.Set(e, "hello", incremental.Low)

	calls := 0
	lengthOf := incremental.NewQuery("length", eqInt, func(ctx context.Context, e *incremental.Engine, _ struct{}) int {
		calls++
		return len(in.Get(ctx, e))
	})

	ctx := context.Background()
	require.Equal(t, 5, lengthOf.Get(ctx, e, struct{}{}))
	require.Equal(t, 1, calls)

	// Same revision: cached without re-verification.
	require.Equal(t, 5, lengthOf.Get(ctx, e, struct{}{}))
	require.Equal(t, 1, calls)

	// New revision, but input unchanged: shallow-verify, no recompute.
	in.Set(e, "hello", incremental.Low)
	require.Equal(t, 5, lengthOf.Get(ctx, e, struct{}{}))
	require.Equal(t, 1, calls)

	// Actual change: recompute.
	in.Set(e, "world!", incremental.Low)
	require.Equal(t, 6, lengthOf.Get(ctx, e, struct{}{}))
	require.Equal(t, 2, calls)
}

func TestEarlyCutoffStopsDownstreamRecompute(t *testing.T) {
	e := incremental.New()
	in := incremental.NewInput(eqString)
	in.Set(e, "hello", incremental.Low)

	lengthCalls := 0
	length := incremental.NewQuery("length", eqInt, func(ctx context.Context, e *incremental.Engine, _ struct{}) int {
		lengthCalls++
		return len(in.Get(ctx, e))
	})

	isFiveCalls := 0
	isFive := incremental.NewQuery("is-five", func(a, b bool) bool { return a == b }, func(ctx context.Context, e *incremental.Engine, _ struct{}) bool {
		isFiveCalls++
		return length.Get(ctx, e, struct{}{}) == 5
	})

	ctx := context.Background()
	require.True(t, isFive.Get(ctx, e, struct{}{}))
	require.Equal(t, 1, lengthCalls)
	require.Equal(t, 1, isFiveCalls)

	// Change the input to a different string of the *same length*: length
	// recomputes (its input changed), but its output is Eq to before, so
	// isFive should not need to recompute.
	in.Set(e, "howdy", incremental.Low)
	require.True(t, isFive.Get(ctx, e, struct{}{}))
	assert.Equal(t, 2, lengthCalls, "length must recompute: its own input changed")
	assert.Equal(t, 1, isFiveCalls, "isFive must not recompute: length's output didn't change (early cutoff)")
}

func TestIndependentKeysAreIndependentlyCached(t *testing.T) {
	e := incremental.New()
	files := map[string]*incremental.Input[string]{
		"a": incremental.NewInput(eqString),
		"b": incremental.NewInput(eqString),
	}
	files["a"].Set(e, "AAA", incremental.Low)
	files["b"].Set(e, "BBB", incremental.Low)

	calls := map[string]int{}
	upper := incremental.NewQuery("len", eqInt, func(ctx context.Context, e *incremental.Engine, key string) int {
		calls[key]++
		return len(files[key].Get(ctx, e))
	})

	ctx := context.Background()
	upper.Get(ctx, e, "a")
	upper.Get(ctx, e, "b")
	require.Equal(t, 1, calls["a"])
	require.Equal(t, 1, calls["b"])

	// Editing "a" must never cause "b" to recompute.
	files["a"].Set(e, "AAAA", incremental.Low)
	upper.Get(ctx, e, "a")
	upper.Get(ctx, e, "b")
	assert.Equal(t, 2, calls["a"])
	assert.Equal(t, 1, calls["b"], "unrelated key must not recompute")
}

func TestRequestCancellationUnblocksReaders(t *testing.T) {
	e := incremental.New()
	snap := e.Snapshot()
	defer snap.Close()

	select {
	case <-snap.Context().Done():
		t.Fatal("snapshot context should not be cancelled yet")
	default:
	}

	e.RequestCancellation()

	select {
	case <-snap.Context().Done():
	default:
		t.Fatal("snapshot context should be cancelled after RequestCancellation")
	}
	assert.True(t, incremental.Cancelled(snap.Context()))
}

func TestSnapshotPinsRevisionAcrossConcurrentWrite(t *testing.T) {
	e := incremental.New()
	in := incremental.NewInput(eqString)
	in.Set(e, "v1", incremental.Low)

	snap := e.Snapshot()
	pinned := snap.Revision()

	// A write blocks until the snapshot is closed; release it from another
	// goroutine once the write has had a chance to queue.
	done := make(chan struct{})
	go func() {
		in.Set(e, "v2", incremental.Low)
		close(done)
	}()

	assert.Equal(t, pinned, e.Revision(), "revision must not advance while the snapshot is outstanding")
	snap.Close()
	<-done
	assert.Greater(t, e.Revision(), pinned)
}
