package store

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/on-the-ground/memo_ive_go/pure"
)

// LRU is a bounded pure.Store evicting the least recently used entry.
type LRU[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

func NewLRU[K comparable, V any](size int) (pure.Store[K, V], error) {
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru store: %w", err)
	}
	return LRU[K, V]{cache: cache}, nil
}

func (l LRU[K, V]) Load(key K) (V, bool) {
	return l.cache.Get(key)
}

func (l LRU[K, V]) Store(key K, value V) {
	l.cache.ContainsOrAdd(key, value)
}

func (l LRU[K, V]) Len() int {
	return l.cache.Len()
}
