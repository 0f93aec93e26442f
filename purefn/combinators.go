package purefn

import "github.com/samber/lo"

// Compose1 returns a function that adapts its argument with before and passes it to f.
func Compose1[B, A, R any](f func(A) R, before func(B) A) Func1[B, R] {
	return func(b B) R {
		return f(before(b))
	}
}

// Compose2 adapts each argument of f with its own function.
func Compose2[B1, B2, A1, A2, R any](f func(A1, A2) R, before1 func(B1) A1, before2 func(B2) A2) Func2[B1, B2, R] {
	return func(b1 B1, b2 B2) R {
		return f(before1(b1), before2(b2))
	}
}

// AndThen1 returns a function that passes the result of f to after.
func AndThen1[A, R, S any](f func(A) R, after func(R) S) Func1[A, S] {
	return func(a A) S {
		return after(f(a))
	}
}

func AndThen2[A1, A2, R, S any](f func(A1, A2) R, after func(R) S) Func2[A1, A2, S] {
	return func(a1 A1, a2 A2) S {
		return after(f(a1, a2))
	}
}

func AndThen3[A1, A2, A3, R, S any](f func(A1, A2, A3) R, after func(R) S) Func3[A1, A2, A3, S] {
	return func(a1 A1, a2 A2, a3 A3) S {
		return after(f(a1, a2, a3))
	}
}

// Partial2First fixes the first argument of f.
func Partial2First[A1, A2, R any](f func(A1, A2) R, a1 A1) Func1[A2, R] {
	return func(a2 A2) R {
		return f(a1, a2)
	}
}

// Partial2Second fixes the second argument of f.
func Partial2Second[A1, A2, R any](f func(A1, A2) R, a2 A2) Func1[A1, R] {
	return func(a1 A1) R {
		return f(a1, a2)
	}
}

func Partial3First[A1, A2, A3, R any](f func(A1, A2, A3) R, a1 A1) Func2[A2, A3, R] {
	return func(a2 A2, a3 A3) R {
		return f(a1, a2, a3)
	}
}

func Partial4First[A1, A2, A3, A4, R any](f func(A1, A2, A3, A4) R, a1 A1) Func3[A2, A3, A4, R] {
	return func(a2 A2, a3 A3, a4 A4) R {
		return f(a1, a2, a3, a4)
	}
}

// Untupled2 is the inverse of Func2.Tupled.
func Untupled2[A1, A2, R any](f func(lo.Tuple2[A1, A2]) R) Func2[A1, A2, R] {
	return func(a1 A1, a2 A2) R {
		return f(lo.T2(a1, a2))
	}
}

// OnlyFirst widens f to two arguments, ignoring the second.
func OnlyFirst[A, B, R any](f func(A) R) Func2[A, B, R] {
	return func(a A, _ B) R {
		return f(a)
	}
}

// OnlySecond widens f to two arguments, ignoring the first.
func OnlySecond[A, B, R any](f func(B) R) Func2[A, B, R] {
	return func(_ A, b B) R {
		return f(b)
	}
}
