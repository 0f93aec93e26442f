package purefn

import (
	"github.com/samber/lo"
)

type (
	Func1[A, R any]              func(A) R
	Func2[A1, A2, R any]         func(A1, A2) R
	Func3[A1, A2, A3, R any]     func(A1, A2, A3) R
	Func4[A1, A2, A3, A4, R any] func(A1, A2, A3, A4) R

	FuncE1[A, R any]      func(A) (R, error)
	FuncE2[A1, A2, R any] func(A1, A2) (R, error)
)

// --- Func1 ---

func (f Func1[A, R]) Apply(a A) R { return f(a) }

func (f Func1[A, R]) Arity() int { return 1 }

// Consume returns f with its result discarded.
func (f Func1[A, R]) Consume() func(A) {
	return func(a A) { f(a) }
}

// Lift maps f over an Option. A nil result becomes None.
func (f Func1[A, R]) Lift() func(Option[A]) Option[R] {
	return func(oa Option[A]) Option[R] {
		a, ok := oa.Get()
		if !ok {
			return None[R]()
		}
		return OfNillable(f(a))
	}
}

// --- Func2 ---

func (f Func2[A1, A2, R]) Apply(a1 A1, a2 A2) R { return f(a1, a2) }

func (f Func2[A1, A2, R]) Arity() int { return 2 }

func (f Func2[A1, A2, R]) Consume() func(A1, A2) {
	return func(a1 A1, a2 A2) { f(a1, a2) }
}

// Tupled returns f taking its arguments as a single tuple.
func (f Func2[A1, A2, R]) Tupled() Func1[lo.Tuple2[A1, A2], R] {
	return func(t lo.Tuple2[A1, A2]) R {
		return f(t.Unpack())
	}
}

// Lift returns None unless both arguments are present.
func (f Func2[A1, A2, R]) Lift() func(Option[A1], Option[A2]) Option[R] {
	return func(o1 Option[A1], o2 Option[A2]) Option[R] {
		a1, ok1 := o1.Get()
		a2, ok2 := o2.Get()
		if !ok1 || !ok2 {
			return None[R]()
		}
		return OfNillable(f(a1, a2))
	}
}

// --- Func3 ---

func (f Func3[A1, A2, A3, R]) Apply(a1 A1, a2 A2, a3 A3) R { return f(a1, a2, a3) }

func (f Func3[A1, A2, A3, R]) Arity() int { return 3 }

func (f Func3[A1, A2, A3, R]) Consume() func(A1, A2, A3) {
	return func(a1 A1, a2 A2, a3 A3) { f(a1, a2, a3) }
}

func (f Func3[A1, A2, A3, R]) Tupled() Func1[lo.Tuple3[A1, A2, A3], R] {
	return func(t lo.Tuple3[A1, A2, A3]) R {
		return f(t.Unpack())
	}
}

// --- Func4 ---

func (f Func4[A1, A2, A3, A4, R]) Apply(a1 A1, a2 A2, a3 A3, a4 A4) R { return f(a1, a2, a3, a4) }

func (f Func4[A1, A2, A3, A4, R]) Arity() int { return 4 }

func (f Func4[A1, A2, A3, A4, R]) Consume() func(A1, A2, A3, A4) {
	return func(a1 A1, a2 A2, a3 A3, a4 A4) { f(a1, a2, a3, a4) }
}

func (f Func4[A1, A2, A3, A4, R]) Tupled() Func1[lo.Tuple4[A1, A2, A3, A4], R] {
	return func(t lo.Tuple4[A1, A2, A3, A4]) R {
		return f(t.Unpack())
	}
}

// --- FuncE1 / FuncE2 ---

func (f FuncE1[A, R]) Apply(a A) (R, error) { return f(a) }

func (f FuncE1[A, R]) Arity() int { return 1 }

// Consume returns f with its result discarded; the error is kept.
func (f FuncE1[A, R]) Consume() func(A) error {
	return func(a A) error {
		_, err := f(a)
		return err
	}
}

func (f FuncE2[A1, A2, R]) Apply(a1 A1, a2 A2) (R, error) { return f(a1, a2) }

func (f FuncE2[A1, A2, R]) Arity() int { return 2 }

func (f FuncE2[A1, A2, R]) Consume() func(A1, A2) error {
	return func(a1 A1, a2 A2) error {
		_, err := f(a1, a2)
		return err
	}
}
