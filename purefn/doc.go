// Package purefn provides typed function values, combinators and memoization for pure functions.
//
// Memoize is not just a utility to add caching.
// Memoize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The centerpiece is the Memoize family, which caches calls by their argument tuple.
// A memoized function computes at most once per distinct argument tuple, also under
// concurrent calls, and never caches a failure.
//
// Features:
//   - Memoize1 to Memoize4, MemoizeE1 and MemoizeE2: typed memoizers for common arities,
//     the E variants for functions returning an error.
//   - Memo types are their own marker: Memoized() on a memoized function returns it unchanged.
//   - Func1 to Func4 with generic combinators (Compose, AndThen, partial application,
//     tupling, Option lifting) instead of one variant per argument type.
//
// Arguments used as keys must be comparable. Nil arguments and nil results are rejected;
// use Option to express absence. An argument tuple that is not equal to itself, because
// it holds a float NaN, is passed through to the function on every call and never cached.
//
// See memo_test.go and memo_bench_test.go for usage and benchmarks.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package purefn
