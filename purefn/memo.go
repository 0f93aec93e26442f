package purefn

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

type (
	Applier1[A, R any]              interface{ Apply(A) R }
	Applier2[A1, A2, R any]         interface{ Apply(A1, A2) R }
	Applier3[A1, A2, A3, R any]     interface{ Apply(A1, A2, A3) R }
	Applier4[A1, A2, A3, A4, R any] interface{ Apply(A1, A2, A3, A4) R }

	ApplierE1[A, R any]      interface{ Apply(A) (R, error) }
	ApplierE2[A1, A2, R any] interface{ Apply(A1, A2) (R, error) }
)

// Memoizer is implemented by every memoized function.
// Memoized returns the receiver, so memoizing twice never stacks caches.
type Memoizer[M any] interface {
	Memoized() M
}

// cache holds the table shared by all memo types.
type cache[K comparable, R any] struct {
	table *pure.Table[K, R]
}

func newCache[K comparable, R any](opts []pure.Option) cache[K, R] {
	return cache[K, R]{table: pure.NewTable[K, R](opts...)}
}

// Len returns the number of cached argument tuples.
func (c cache[K, R]) Len() int { return c.table.Len() }

func (c cache[K, R]) Stats() pure.Stats { return c.table.Stats() }

func (c cache[K, R]) ID() string { return c.table.ID() }

func (c cache[K, R]) Close() { c.table.Close() }

func load[K comparable, R any](t *pure.Table[K, R], key K, compute func() (R, error), args ...any) (R, error) {
	if helper.AnyNil(args...) {
		var zero R
		return zero, fmt.Errorf("%w: %v", pure.ErrNilKey, args)
	}
	return t.Load(key, compute)
}

func must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}

func mustNotNil(f any) {
	if helper.IsNil(f) {
		panic(pure.ErrNilFunction)
	}
}

// --- Memo1 ---

// Memo1 is a memoized Func1. Apply panics with pure.ErrNilKey or pure.ErrNilResult
// on nil arguments or results; a panic of the wrapped function propagates and
// caches nothing.
type Memo1[A comparable, R any] struct {
	cache[A, R]
	fn Func1[A, R]
}

func Memoize1[A comparable, R any](f func(A) R, opts ...pure.Option) *Memo1[A, R] {
	mustNotNil(f)
	return &Memo1[A, R]{cache: newCache[A, R](opts), fn: f}
}

// MemoizeOf1 memoizes f, unless f already is a *Memo1, which is returned unchanged.
func MemoizeOf1[A comparable, R any](f Applier1[A, R], opts ...pure.Option) *Memo1[A, R] {
	mustNotNil(f)
	if m, ok := f.(*Memo1[A, R]); ok {
		return m
	}
	return Memoize1(f.Apply, opts...)
}

func (m *Memo1[A, R]) Apply(a A) R {
	return must(load(m.table, a, func() (R, error) { return m.fn(a), nil }, a))
}

func (m *Memo1[A, R]) Func() Func1[A, R] { return m.Apply }

func (m *Memo1[A, R]) Memoized() *Memo1[A, R] { return m }

func (m *Memo1[A, R]) Warm(ctx context.Context, parallelism int, keys ...A) error {
	return m.table.Warm(ctx, parallelism, keys, func(a A) (R, error) { return m.fn(a), nil })
}

// --- Memo2 ---

type Memo2[A1, A2 comparable, R any] struct {
	cache[lo.Tuple2[A1, A2], R]
	fn Func2[A1, A2, R]
}

func Memoize2[A1, A2 comparable, R any](f func(A1, A2) R, opts ...pure.Option) *Memo2[A1, A2, R] {
	mustNotNil(f)
	return &Memo2[A1, A2, R]{cache: newCache[lo.Tuple2[A1, A2], R](opts), fn: f}
}

func MemoizeOf2[A1, A2 comparable, R any](f Applier2[A1, A2, R], opts ...pure.Option) *Memo2[A1, A2, R] {
	mustNotNil(f)
	if m, ok := f.(*Memo2[A1, A2, R]); ok {
		return m
	}
	return Memoize2(f.Apply, opts...)
}

func (m *Memo2[A1, A2, R]) Apply(a1 A1, a2 A2) R {
	return must(load(m.table, lo.T2(a1, a2), func() (R, error) { return m.fn(a1, a2), nil }, a1, a2))
}

func (m *Memo2[A1, A2, R]) Func() Func2[A1, A2, R] { return m.Apply }

func (m *Memo2[A1, A2, R]) Memoized() *Memo2[A1, A2, R] { return m }

// --- Memo3 ---

type Memo3[A1, A2, A3 comparable, R any] struct {
	cache[lo.Tuple3[A1, A2, A3], R]
	fn Func3[A1, A2, A3, R]
}

func Memoize3[A1, A2, A3 comparable, R any](f func(A1, A2, A3) R, opts ...pure.Option) *Memo3[A1, A2, A3, R] {
	mustNotNil(f)
	return &Memo3[A1, A2, A3, R]{cache: newCache[lo.Tuple3[A1, A2, A3], R](opts), fn: f}
}

func MemoizeOf3[A1, A2, A3 comparable, R any](f Applier3[A1, A2, A3, R], opts ...pure.Option) *Memo3[A1, A2, A3, R] {
	mustNotNil(f)
	if m, ok := f.(*Memo3[A1, A2, A3, R]); ok {
		return m
	}
	return Memoize3(f.Apply, opts...)
}

func (m *Memo3[A1, A2, A3, R]) Apply(a1 A1, a2 A2, a3 A3) R {
	return must(load(m.table, lo.T3(a1, a2, a3), func() (R, error) { return m.fn(a1, a2, a3), nil }, a1, a2, a3))
}

func (m *Memo3[A1, A2, A3, R]) Func() Func3[A1, A2, A3, R] { return m.Apply }

func (m *Memo3[A1, A2, A3, R]) Memoized() *Memo3[A1, A2, A3, R] { return m }

// --- Memo4 ---

type Memo4[A1, A2, A3, A4 comparable, R any] struct {
	cache[lo.Tuple4[A1, A2, A3, A4], R]
	fn Func4[A1, A2, A3, A4, R]
}

func Memoize4[A1, A2, A3, A4 comparable, R any](f func(A1, A2, A3, A4) R, opts ...pure.Option) *Memo4[A1, A2, A3, A4, R] {
	mustNotNil(f)
	return &Memo4[A1, A2, A3, A4, R]{cache: newCache[lo.Tuple4[A1, A2, A3, A4], R](opts), fn: f}
}

func MemoizeOf4[A1, A2, A3, A4 comparable, R any](f Applier4[A1, A2, A3, A4, R], opts ...pure.Option) *Memo4[A1, A2, A3, A4, R] {
	mustNotNil(f)
	if m, ok := f.(*Memo4[A1, A2, A3, A4, R]); ok {
		return m
	}
	return Memoize4(f.Apply, opts...)
}

func (m *Memo4[A1, A2, A3, A4, R]) Apply(a1 A1, a2 A2, a3 A3, a4 A4) R {
	return must(load(
		m.table,
		lo.T4(a1, a2, a3, a4),
		func() (R, error) { return m.fn(a1, a2, a3, a4), nil },
		a1, a2, a3, a4,
	))
}

func (m *Memo4[A1, A2, A3, A4, R]) Func() Func4[A1, A2, A3, A4, R] { return m.Apply }

func (m *Memo4[A1, A2, A3, A4, R]) Memoized() *Memo4[A1, A2, A3, A4, R] { return m }

// --- MemoE1 ---

// MemoE1 is a memoized FuncE1. Errors are returned to the caller and never cached,
// so the next call with the same argument retries.
type MemoE1[A comparable, R any] struct {
	cache[A, R]
	fn FuncE1[A, R]
}

func MemoizeE1[A comparable, R any](f func(A) (R, error), opts ...pure.Option) *MemoE1[A, R] {
	mustNotNil(f)
	return &MemoE1[A, R]{cache: newCache[A, R](opts), fn: f}
}

func MemoizeOfE1[A comparable, R any](f ApplierE1[A, R], opts ...pure.Option) *MemoE1[A, R] {
	mustNotNil(f)
	if m, ok := f.(*MemoE1[A, R]); ok {
		return m
	}
	return MemoizeE1(f.Apply, opts...)
}

func (m *MemoE1[A, R]) Apply(a A) (R, error) {
	return load(m.table, a, func() (R, error) { return m.fn(a) }, a)
}

func (m *MemoE1[A, R]) Func() FuncE1[A, R] { return m.Apply }

func (m *MemoE1[A, R]) Memoized() *MemoE1[A, R] { return m }

// Warm computes keys ahead of time. All failures are combined in the returned error.
func (m *MemoE1[A, R]) Warm(ctx context.Context, parallelism int, keys ...A) error {
	return m.table.Warm(ctx, parallelism, keys, m.fn)
}

// --- MemoE2 ---

type MemoE2[A1, A2 comparable, R any] struct {
	cache[lo.Tuple2[A1, A2], R]
	fn FuncE2[A1, A2, R]
}

func MemoizeE2[A1, A2 comparable, R any](f func(A1, A2) (R, error), opts ...pure.Option) *MemoE2[A1, A2, R] {
	mustNotNil(f)
	return &MemoE2[A1, A2, R]{cache: newCache[lo.Tuple2[A1, A2], R](opts), fn: f}
}

func MemoizeOfE2[A1, A2 comparable, R any](f ApplierE2[A1, A2, R], opts ...pure.Option) *MemoE2[A1, A2, R] {
	mustNotNil(f)
	if m, ok := f.(*MemoE2[A1, A2, R]); ok {
		return m
	}
	return MemoizeE2(f.Apply, opts...)
}

func (m *MemoE2[A1, A2, R]) Apply(a1 A1, a2 A2) (R, error) {
	return load(m.table, lo.T2(a1, a2), func() (R, error) { return m.fn(a1, a2) }, a1, a2)
}

func (m *MemoE2[A1, A2, R]) Func() FuncE2[A1, A2, R] { return m.Apply }

func (m *MemoE2[A1, A2, R]) Memoized() *MemoE2[A1, A2, R] { return m }
