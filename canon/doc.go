// Package canon normalizes districting plans into a canonical, relabeling-free
// form that every other package in redist consumes.
//
// A plan over N nodes is a sequence of district labels, one per node, indexed by
// a globally fixed node ordering (see precinct.Graph.Order). Two plans that only
// differ by the names given to their districts describe the same partition of
// the nodes; canonical form removes that freedom:
//
//	labels     3 1 2 1
//	canonical  1 2 3 2
//
// The first label met while scanning positions 0..N-1 becomes 1, the next unseen
// label becomes 2, and so on. The mapping is built lazily in one linear pass and
// never compares labels beyond equality, so any comparable label type works.
//
// Key types:
//
//	Labeling   — read-only view of an integer plan (Len, Label).
//	Labels     — plain []int plan; not necessarily canonical.
//	Partition  — canonical plan; a comparable value, safe as a map key.
//
// Guarantees:
//   - Canonicalize is idempotent and invariant under any bijective relabeling.
//   - Partition values are immutable; equal plans compare equal with ==.
//
// Errors:
//
//	ErrMapping       — an assignment misses a node or names an unknown node.
//	ErrCanonicalForm — labels are not exactly 1..k (a gap or a value < 1).
package canon
