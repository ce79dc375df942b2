// SPDX-License-Identifier: MIT

// Package mapping assigns dense, zero-based integer indices to arbitrary
// comparable values and maps them back.
//
// What & Why:
//
//	Matrix-based clustering algorithms only understand indices 0..N-1.
//	IntegerMapping hands out those indices on first sight of a value and
//	keeps the reverse table, so a partition of indices can be turned back
//	into a partition of the original objects without losing identity.
//
// Guarantees:
//
//   - Map is idempotent: the same value always yields the same index.
//   - Indices are dense: after k distinct values, exactly 0..k-1 are in use.
//   - Append-only: there is no removal and no index reuse.
//   - Unmap(i) fails with ErrUnknownIndex for any i never handed out.
//
// Concurrency:
//
//	An IntegerMapping is owned by one clustering run and is not safe for
//	concurrent mutation. Build it once, then share it read-only.
//
// Complexity:
//
//	Map and Lookup run in amortized O(1); Unmap in O(1); Objects in O(N).
package mapping
