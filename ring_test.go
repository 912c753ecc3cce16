package memacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingPushAndFetch(t *testing.T) {
	r := NewRing(RingKill, 0)
	r.Push("one")
	r.Push("two")
	r.Push("three")

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "three", r.Current())

	text, ok := r.Fetch(0)
	require.True(t, ok)
	assert.Equal(t, "three", text)

	text, ok = r.Fetch(-1)
	require.True(t, ok)
	assert.Equal(t, "two", text)

	text, ok = r.Fetch(-2)
	require.True(t, ok)
	assert.Equal(t, "one", text)
}

func TestRingMaxSizeEvictsOldest(t *testing.T) {
	r := NewRing(RingSearch, 2)
	r.Push("a")
	r.Push("b")
	r.Push("c")

	assert.Equal(t, 2, r.Len())
	assert.ElementsMatch(t, []string{"c", "b"}, r.List())
}

func TestRingAccumulateAppendPrepend(t *testing.T) {
	r := NewRing(RingKill, 0)
	r.Append("lo")
	r.Append(" world")
	assert.Equal(t, "lo world", r.Current())
	assert.Equal(t, 1, r.Len())

	r.Prepend("Hel")
	assert.Equal(t, "Hello world", r.Current())
	assert.Equal(t, 1, r.Len())

	r.EndAccumulate()
	r.Append("next")
	assert.Equal(t, 2, r.Len())
}

func TestRingCycleWraps(t *testing.T) {
	r := NewRing(RingKill, 0)
	r.Push("a")
	r.Push("b")
	r.Push("c")
	// current order (most recent first): c, b, a

	r.Cycle(1)
	assert.Equal(t, "b", r.Current())
	r.Cycle(1)
	assert.Equal(t, "a", r.Current())
	r.Cycle(1)
	assert.Equal(t, "c", r.Current(), "cycling past the oldest wraps back to the newest")

	r.Cycle(-1)
	assert.Equal(t, "a", r.Current())
}

func TestRingDeleteCurrentAndClear(t *testing.T) {
	r := NewRing(RingKill, 0)
	r.Push("a")
	r.Push("b")
	r.DeleteCurrent()
	assert.Equal(t, "a", r.Current())
	assert.Equal(t, 1, r.Len())

	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, "", r.Current())
	_, ok := r.Fetch(0)
	assert.False(t, ok)
}

func TestRingPushEndsAccumulation(t *testing.T) {
	r := NewRing(RingKill, 0)
	r.Append("x")
	r.Push("fresh")
	r.Append("y")
	assert.Equal(t, "y", r.Current(), "Push must close the prior accumulation so Append starts a new entry")
}
