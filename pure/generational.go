package pure

import "sync"

// GenerationalStore is a bounded Store made of two generations.
//
// New entries go to the head generation. When the head holds maxSize entries
// the generations rotate: the tail is dropped and a fresh head takes its place.
// Lookups consult the head first, then the tail, so an entry survives at least
// maxSize later insertions.
type GenerationalStore[K comparable, V any] struct {
	mu      sync.RWMutex
	gens    [2]map[K]V
	headIdx int
	maxSize int
}

func NewGenerationalStore[K comparable, V any](maxSize int) *GenerationalStore[K, V] {
	if maxSize <= 0 {
		panic("maxSize should be greater than 0")
	}
	return &GenerationalStore[K, V]{
		gens:    [2]map[K]V{make(map[K]V, maxSize), make(map[K]V)},
		maxSize: maxSize,
	}
}

func (g *GenerationalStore[K, V]) Load(key K) (V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v, ok := g.gens[g.headIdx][key]; ok {
		return v, true
	}
	v, ok := g.gens[1-g.headIdx][key]
	return v, ok
}

func (g *GenerationalStore[K, V]) Store(key K, value V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.gens[g.headIdx][key]; ok {
		return
	}
	if _, ok := g.gens[1-g.headIdx][key]; ok {
		return
	}
	if len(g.gens[g.headIdx]) >= g.maxSize {
		g.headIdx = 1 - g.headIdx
		g.gens[g.headIdx] = make(map[K]V, g.maxSize)
	}
	g.gens[g.headIdx][key] = value
}

func (g *GenerationalStore[K, V]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.gens[0]) + len(g.gens[1])
}
