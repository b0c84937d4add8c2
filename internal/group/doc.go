// Package group models balanced delimiter spans in a token stream.
//
// A Group is one matched pair of delimiters — (...) [...] {...} — holding
// ordered fields split at separator symbols, plus the exact source span of
// the whole construct. Groups nest: a field is a sequence of elements, each
// a plain token or another group, so a grouped stream is a tree of tokens
// interleaved with groups.
//
// Invariants:
//   - A well-formed group has exactly max(len(fields)-1, 0) separators.
//   - Extra separators are user input errors: the group is still built and
//     carries a diagnostic in Err.
//   - Missing separators are a bug in the grouping pass: New fails.
//   - The closing delimiter is derived from Delim; it is never stored.
//
// Groups are immutable after construction; concurrent readers need no
// locking.
package group
