package pure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/memo_ive_go/pure"
)

func TestSyncMapStore_KeepsFirstValue(t *testing.T) {
	store := pure.NewSyncMapStore[string, string]()

	store.Store("a", "first")
	store.Store("a", "second")

	v, ok := store.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, store.Len())

	_, ok = store.Load("b")
	assert.False(t, ok)
}

func TestGenerationalStore_Rotation(t *testing.T) {
	store := pure.NewGenerationalStore[int, int](2)

	store.Store(1, 10)
	store.Store(2, 20)
	// head is full: 3 opens a new generation, 1 and 2 move to the tail
	store.Store(3, 30)

	for k, want := range map[int]int{1: 10, 2: 20, 3: 30} {
		v, ok := store.Load(k)
		assert.True(t, ok, "key %d", k)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 3, store.Len())

	store.Store(4, 40)
	// head full again: the tail holding 1 and 2 is dropped
	store.Store(5, 50)

	_, ok := store.Load(1)
	assert.False(t, ok)
	_, ok = store.Load(2)
	assert.False(t, ok)
	for _, k := range []int{3, 4, 5} {
		_, ok := store.Load(k)
		assert.True(t, ok, "key %d", k)
	}
	assert.Equal(t, 3, store.Len())
}

func TestGenerationalStore_KeepsFirstValue(t *testing.T) {
	store := pure.NewGenerationalStore[string, int](1)
	store.Store("a", 1)
	store.Store("b", 2)
	store.Store("b", 3)

	v, ok := store.Load("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestGenerationalStore_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		pure.NewGenerationalStore[int, int](0)
	})
}
