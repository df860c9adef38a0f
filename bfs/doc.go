// Package bfs provides multi-source breadth-first search over any graph that
// exposes dense integer node positions, returning hop depths, parent links,
// the source tree each node joined, and visit order.
//
// What
//
//   - Explore nodes outward from one or more sources.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: position → hops from its source (-1 when unreached)
//   - Parent: position → predecessor in the search tree (-1 for roots)
//   - Source: position → index into sources of the tree that claimed it
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - WithPick replaces FIFO order, turning the walk into a randomized flood
//     fill. Every source tree is still connected.
//
// Determinism
//
//	Neighbors are expanded in the order Adjacency.Neighbors returns them, so
//	with the default FIFO order (or a seeded Pick) the result is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, []int{0}, bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	if lost := res.Unreached(); len(lost) > 0 {
//	    // g is disconnected
//	}
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrSourceNotFound   if a source position is out of range.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
