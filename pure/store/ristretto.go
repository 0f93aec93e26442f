package store

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"

	"github.com/on-the-ground/memo_ive_go/pure"
)

// entry keeps the original key next to the value: ristretto only sees the
// 64-bit hash, so a load must confirm it found the same key.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Ristretto is a bounded pure.Store with ristretto's TinyLFU admission and
// eviction. Every entry costs 1, so maxEntries bounds the entry count.
//
// Ristretto may refuse to admit an entry; the table then simply recomputes
// that key on its next miss.
type Ristretto[K comparable, V any] struct {
	cache *ristretto.Cache[uint64, entry[K, V]]
}

func NewRistretto[K comparable, V any](maxEntries int64) (pure.Store[K, V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("maxEntries should be greater than 0, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, entry[K, V]]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto store: %w", err)
	}
	return Ristretto[K, V]{cache: cache}, nil
}

// hashKey hashes pointers by address, since %#v would print the pointed-to value.
func hashKey[K comparable](key K) uint64 {
	d := xxhash.New()
	if reflect.ValueOf(any(key)).Kind() == reflect.Pointer {
		_, _ = fmt.Fprintf(d, "%T:%p", key, any(key))
	} else {
		_, _ = fmt.Fprintf(d, "%T:%#v", key, key)
	}
	return d.Sum64()
}

func (r Ristretto[K, V]) Load(key K) (V, bool) {
	e, ok := r.cache.Get(hashKey(key))
	if !ok || e.key != key {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Store sets the entry without looking it up first, so unlike the other stores it
// replaces a value already present for key. A Table only stores after a miss.
func (r Ristretto[K, V]) Store(key K, value V) {
	r.cache.Set(hashKey(key), entry[K, V]{key: key, value: value}, 1)
	r.cache.Wait()
}

// Len is the number of admitted minus evicted entries as reported by ristretto's metrics.
func (r Ristretto[K, V]) Len() int {
	m := r.cache.Metrics
	if m == nil {
		return 0
	}
	return int(m.KeysAdded() - m.KeysEvicted())
}

func (r Ristretto[K, V]) Close() {
	r.cache.Close()
}
