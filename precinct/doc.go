// Package precinct holds the read-only precinct graph that plans are scored
// against: a fixed node set, undirected adjacency, and per-node numeric
// attributes (democratic votes, republican votes, optional population).
//
// The graph is validated once, at construction. Attribute names are resolved
// through AttributeNames (defaults "DV" and "RV", population disabled) and the
// values are materialized into dense columns indexed by node position, so
// scoring never performs string lookups per node.
//
// Node order:
//
//	Positions 0..N-1 follow ascending node identifier. When every identifier is
//	a base-10 integer they compare numerically ("2" < "10"); otherwise all of
//	them compare byte-wise. Every plan in redist is indexed by this order.
//
// Concurrency:
//
//	A *Graph never changes after NewGraph returns, so it may be shared by any
//	number of goroutines without locking.
package precinct
