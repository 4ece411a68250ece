package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyyu2004/gqls/pkg/arena"
)

func TestArenaPushGet(t *testing.T) {
	var a arena.Arena[string]

	p0 := a.Push("foo")
	p1 := a.Push("bar")

	assert.Equal(t, arena.Pointer[string](0), p0)
	assert.Equal(t, arena.Pointer[string](1), p1)
	assert.Equal(t, "foo", a.Get(p0))
	assert.Equal(t, "bar", a.Get(p1))
	assert.Equal(t, 2, a.Len())
}

func TestArenaGetOutOfRangePanics(t *testing.T) {
	var a arena.Arena[int]
	a.Push(1)

	assert.Panics(t, func() {
		a.Get(arena.Pointer[int](5))
	})
}

func TestArenaAllPreservesInsertionOrder(t *testing.T) {
	var a arena.Arena[int]
	for i := 0; i < 5; i++ {
		a.Push(i)
	}

	var got []int
	a.All(func(p arena.Pointer[int], v int) bool {
		got = append(got, v)
		return true
	})
	require.Len(t, got, 5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestArenaAllStopsEarly(t *testing.T) {
	var a arena.Arena[int]
	for i := 0; i < 5; i++ {
		a.Push(i)
	}

	var got []int
	a.All(func(p arena.Pointer[int], v int) bool {
		got = append(got, v)
		return v < 2
	})
	assert.Equal(t, []int{0, 1, 2}, got)
}
