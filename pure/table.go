package pure

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

// Table memoizes computations by key.
//
// Per key there are two states, absent and computed. The transition happens once,
// inside a single in-flight call, and is never undone by the Table itself.
type Table[K comparable, V any] struct {
	id     string
	name   string
	store  Store[K, V]
	calls  sync.Map // K -> *call[V]
	logger *zap.Logger

	hits     atomic.Uint64
	misses   atomic.Uint64
	failures atomic.Uint64
	waits    atomic.Uint64
}

// call is the in-flight computation of one key. val and ok are written
// before done is closed and read only after.
type call[V any] struct {
	done chan struct{}
	val  V
	ok   bool
}

// Stats is a snapshot of a table's counters.
type Stats struct {
	Hits     uint64 // served from the store or from another caller's flight
	Misses   uint64 // computations started
	Failures uint64 // computations that returned an error or panicked
	Waits    uint64 // times a caller parked on another caller's flight
	Len      int
}

func NewTable[K comparable, V any](opts ...Option) *Table[K, V] {
	o := newOptions(opts)

	var store Store[K, V]
	switch s := o.store.(type) {
	case nil:
		store = NewSyncMapStore[K, V]()
	case Store[K, V]:
		store = s
	default:
		panic(fmt.Errorf("%w: %T", ErrStoreType, o.store))
	}

	t := &Table[K, V]{
		id:     uuid.New().String(),
		name:   o.name,
		store:  store,
		logger: o.logger,
	}
	t.logger = t.logger.With(zap.String("memo_id", t.id))
	if t.name != "" {
		t.logger = t.logger.With(zap.String("memo_name", t.name))
	}
	t.logger.Debug("created memo table", zap.String("store", fmt.Sprintf("%T", store)))
	return t
}

// Load returns the value for key, calling compute only if no value is stored
// and no other caller is computing it right now.
//
// An error from compute is returned as is and nothing is stored. Waiters on a
// failed call retry on their own, so every error a caller sees comes from a
// computation made for that caller. A nil key or result is rejected with
// ErrNilKey or ErrNilResult.
//
// A key that is not equal to itself, such as a float NaN or a tuple holding one,
// can never be found again. Its value is computed on every call and never stored.
func (t *Table[K, V]) Load(key K, compute func() (V, error)) (V, error) {
	if helper.IsNil(key) {
		var zero V
		return zero, ErrNilKey
	}
	if key != key {
		t.misses.Add(1)
		t.logger.Debug("computing uncacheable memo key", zap.Any("key", key))
		return t.compute(key, compute)
	}
	for {
		if v, ok := t.store.Load(key); ok {
			t.hits.Add(1)
			return v, nil
		}

		c := &call[V]{done: make(chan struct{})}
		actual, loaded := t.calls.LoadOrStore(key, c)
		if !loaded {
			return t.lead(key, c, compute)
		}

		flight := actual.(*call[V])
		t.waits.Add(1)
		<-flight.done
		if flight.ok {
			t.hits.Add(1)
			return flight.val, nil
		}
	}
}

func (t *Table[K, V]) lead(key K, c *call[V], compute func() (V, error)) (v V, err error) {
	defer func() {
		// the store is written before the flight disappears
		t.calls.Delete(key)
		close(c.done)
	}()

	// the previous flight may have finished between our miss and LoadOrStore
	if v, ok := t.store.Load(key); ok {
		t.hits.Add(1)
		c.val, c.ok = v, true
		return v, nil
	}

	t.misses.Add(1)
	t.logger.Debug("computing memo entry", zap.Any("key", key))

	v, err = t.compute(key, compute)
	if err != nil {
		return v, err
	}

	t.store.Store(key, v)
	c.val, c.ok = v, true
	return v, nil
}

// compute runs the computation of key and counts every error or panic it ends with.
// A panic is re-raised after it is counted.
func (t *Table[K, V]) compute(key K, compute func() (V, error)) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			t.failures.Add(1)
			t.logger.Warn("memo computation panicked", zap.Any("key", key), zap.Any("panic", r))
			panic(r)
		}
	}()

	v, err = compute()
	if err == nil && helper.IsNil(v) {
		err = fmt.Errorf("%w: key %v", ErrNilResult, key)
	}
	if err != nil {
		t.failures.Add(1)
		t.logger.Warn("memo computation failed", zap.Any("key", key), zap.Error(err))
		var zero V
		return zero, err
	}
	return v, nil
}

// Warm computes the given keys ahead of time with at most parallelism concurrent
// computations (unbounded if parallelism <= 0). Keys already stored are skipped.
// All failures are combined into the returned error. Cancelling ctx stops
// scheduling further keys.
func (t *Table[K, V]) Warm(ctx context.Context, parallelism int, keys []K, compute func(K) (V, error)) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	appendErr := func(err error) {
		mu.Lock()
		errs = multierr.Append(errs, err)
		mu.Unlock()
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			appendErr(err)
			break
		}
		g.Go(func() error {
			if _, err := t.Load(key, func() (V, error) { return compute(key) }); err != nil {
				appendErr(fmt.Errorf("warm %v: %w", key, err))
			}
			return nil
		})
	}
	_ = g.Wait()

	t.logger.Debug("warmed memo table", zap.Int("keys", len(keys)), zap.Int("len", t.Len()))
	return errs
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int {
	return t.store.Len()
}

func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Hits:     t.hits.Load(),
		Misses:   t.misses.Load(),
		Failures: t.failures.Load(),
		Waits:    t.waits.Load(),
		Len:      t.Len(),
	}
}

// ID returns the unique id of the table, also used as the memo_id log field.
func (t *Table[K, V]) ID() string {
	return t.id
}

// Close releases the store if it holds resources. The table must not be used afterwards.
func (t *Table[K, V]) Close() {
	if closer, ok := t.store.(interface{ Close() }); ok {
		closer.Close()
	}
	t.logger.Debug("closed memo table")
}
