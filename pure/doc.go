// Package pure provides the memoization engine behind purefn.
//
// A Table maps argument keys to computed results and guarantees that,
// for as long as a key stays in the table's Store, the result for that key
// is computed at most once, also when many goroutines ask for it at the same time.
//
// Features:
//   - Per-key in-flight calls: callers for the same key wait for a single computation,
//     callers for different keys never wait for each other.
//   - Failed computations (error or panic) are never cached; the next call retries.
//   - Pluggable storage: the unbounded SyncMapStore (default) or the bounded
//     GenerationalStore here, plus the LRU and ristretto stores in pure/store.
//
// WARNING: Memoize only pure functions. An impure function is called once per key
// and only the first result is ever observed afterwards.
package pure
