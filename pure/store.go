package pure

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

// Store is the storage behind a Table.
//
// Implementations must be safe for concurrent use. A Table only stores a key after
// a miss, so whether Store replaces a value already present for key only matters
// for writers outside the Table. All stores except store.Ristretto keep the first value.
type Store[K comparable, V any] interface {
	Load(key K) (V, bool)
	Store(key K, value V)
	Len() int
}

// SyncMapStore is an unbounded Store. Entries are never evicted or updated.
type SyncMapStore[K comparable, V any] struct {
	m    sync.Map
	size atomic.Int64
}

func NewSyncMapStore[K comparable, V any]() *SyncMapStore[K, V] {
	return &SyncMapStore[K, V]{}
}

func (s *SyncMapStore[K, V]) Load(key K) (V, bool) {
	return helper.GetTypedValueOf2[V](func() (any, bool) {
		return s.m.Load(key)
	})
}

func (s *SyncMapStore[K, V]) Store(key K, value V) {
	if _, loaded := s.m.LoadOrStore(key, value); !loaded {
		s.size.Add(1)
	}
}

func (s *SyncMapStore[K, V]) Len() int {
	return int(s.size.Load())
}
