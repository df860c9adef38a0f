// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: immutable precinct graph, validated once at construction.
// Policy:
//   - All validation happens in NewGraph; accessors never fail on user data.
//   - Columns (dem, rep, pop) and adjacency are indexed by node position.

package precinct

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/core"
)

// Graph is an immutable precinct graph. Build it with NewGraph.
type Graph struct {
	names AttributeNames

	ids   []string             // position → node ID, ascending (see SortIDs)
	index map[string]int       // node ID → position
	attrs []map[string]float64 // position → copy of the caller attributes

	dem []float64 // validated democratic votes
	rep []float64 // validated republican votes
	pop []float64 // validated population; nil when disabled

	adj   [][]int // position → sorted neighbor positions
	edges int
}

// NewGraph validates nodes and edges and returns an immutable Graph.
//
// Implementation:
//   - Stage 1: resolve attribute names from options.
//   - Stage 2: sort node IDs (SortIDs), reject empty and duplicate IDs.
//   - Stage 3: validate and materialize dem/rep/pop columns.
//   - Stage 4: build undirected adjacency; reject unknown endpoints and loops.
//     Repeated edges collapse into one.
//
// Errors:
//   - ErrEmptyGraph, ErrEmptyNodeID, ErrDuplicateNode, ErrUnknownNode, ErrLoop
//     (wrapped with context), *AttributeError (matches ErrAttribute).
//
// Complexity: O(N log N + E log E + N·A) where A is the attribute count read.
func NewGraph(nodes []Node, edges []Edge, opts ...Option) (*Graph, error) {
	names := DefaultAttributeNames()
	for _, opt := range opts {
		opt(&names)
	}
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	less := idLess(nodeIDs(sorted))
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i].ID, sorted[j].ID) })

	g := &Graph{
		names: names,
		ids:   make([]string, len(sorted)),
		index: make(map[string]int, len(sorted)),
		attrs: make([]map[string]float64, len(sorted)),
		dem:   make([]float64, len(sorted)),
		rep:   make([]float64, len(sorted)),
		adj:   make([][]int, len(sorted)),
	}
	if names.Population != "" {
		g.pop = make([]float64, len(sorted))
	}

	var err error
	for i, n := range sorted {
		if n.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("NewGraph(%q): %w", n.ID, ErrDuplicateNode)
		}
		g.ids[i] = n.ID
		g.index[n.ID] = i
		g.attrs[i] = make(map[string]float64, len(n.Attrs))
		for k, v := range n.Attrs {
			g.attrs[i][k] = v
		}
		if g.dem[i], err = readAttr(n, names.Dem); err != nil {
			return nil, err
		}
		if g.rep[i], err = readAttr(n, names.Rep); err != nil {
			return nil, err
		}
		if g.pop != nil {
			if g.pop[i], err = readAttr(n, names.Population); err != nil {
				return nil, err
			}
		}
	}

	if err = g.addEdges(edges); err != nil {
		return nil, err
	}

	return g, nil
}

// FromCore freezes a loaded core.Graph: its vertices become nodes (with their
// Metadata as attributes) and its edges become adjacencies, validated by
// NewGraph.
// Errors: as NewGraph.
// Complexity: O(N log N + E log E).
func FromCore(cg *core.Graph, opts ...Option) (*Graph, error) {
	ids := cg.Vertices()
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		meta, err := cg.Metadata(id)
		if err != nil {
			return nil, err
		}
		nodes[i] = Node{ID: id, Attrs: meta}
	}
	ce := cg.Edges()
	edges := make([]Edge, len(ce))
	for i, e := range ce {
		edges[i] = Edge{From: e.From, To: e.To}
	}

	return NewGraph(nodes, edges, opts...)
}

// readAttr fetches a required, finite, non-negative attribute.
func readAttr(n Node, attr string) (float64, error) {
	v, ok := n.Attrs[attr]
	if !ok {
		return 0, &AttributeError{Node: n.ID, Attr: attr, Reason: "missing"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &AttributeError{Node: n.ID, Attr: attr, Reason: "NaN or Inf"}
	}
	if v < 0 {
		return 0, &AttributeError{Node: n.ID, Attr: attr, Reason: "negative"}
	}

	return v, nil
}

// addEdges fills the adjacency lists, deduplicating parallel edges.
func (g *Graph) addEdges(edges []Edge) error {
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		u, ok := g.index[e.From]
		if !ok {
			return fmt.Errorf("NewGraph edge %q-%q: %q: %w", e.From, e.To, e.From, ErrUnknownNode)
		}
		v, ok := g.index[e.To]
		if !ok {
			return fmt.Errorf("NewGraph edge %q-%q: %q: %w", e.From, e.To, e.To, ErrUnknownNode)
		}
		if u == v {
			return fmt.Errorf("NewGraph edge %q-%q: %w", e.From, e.To, ErrLoop)
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[[2]int{u, v}]; dup {
			continue
		}
		seen[[2]int{u, v}] = struct{}{}
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
		g.edges++
	}
	for i := range g.adj {
		sort.Ints(g.adj[i])
	}

	return nil
}

// Len returns the number of nodes N.
func (g *Graph) Len() int { return len(g.ids) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Names returns the attribute names the graph was validated with.
func (g *Graph) Names() AttributeNames { return g.names }

// Order returns a copy of the node IDs in position order. This is the order
// every plan in redist is indexed by.
// Complexity: O(N).
func (g *Graph) Order() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// ID returns the node ID at position i.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Index returns the position of a node ID.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Dem returns the democratic votes of the node at position i.
func (g *Graph) Dem(i int) float64 { return g.dem[i] }

// Rep returns the republican votes of the node at position i.
func (g *Graph) Rep(i int) float64 { return g.rep[i] }

// HasPopulation reports whether a population attribute was configured.
func (g *Graph) HasPopulation() bool { return g.pop != nil }

// Population returns the population of the node at position i.
func (g *Graph) Population(i int) (float64, error) {
	if g.pop == nil {
		return 0, ErrNoPopulation
	}

	return g.pop[i], nil
}

// Attr returns any raw attribute of the node at position i.
func (g *Graph) Attr(i int, name string) (float64, bool) {
	v, ok := g.attrs[i][name]
	return v, ok
}

// Neighbors returns the sorted neighbor positions of node i. The slice is
// shared with the graph and must not be modified.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// CheckLabeling verifies that a plan covers exactly the graph's nodes.
// A short plan reports the first unlabeled node as missing; a long plan
// reports the first surplus position as unknown.
// Errors: *canon.MappingError.
func (g *Graph) CheckLabeling(l canon.Labeling) error {
	n := l.Len()
	switch {
	case n < len(g.ids):
		return &canon.MappingError{Node: g.ids[n], Reason: "missing"}
	case n > len(g.ids):
		return &canon.MappingError{Node: "#" + strconv.Itoa(len(g.ids)), Reason: "unknown"}
	}

	return nil
}

// SortIDs sorts node identifiers into graph order: numerically when every ID
// is a base-10 integer, byte-wise (ASCII) otherwise. The mode is decided for
// the whole set so the ordering stays a strict weak order.
func SortIDs(ids []string) {
	less := idLess(ids)
	sort.SliceStable(ids, func(i, j int) bool { return less(ids[i], ids[j]) })
}

// idLess picks the comparison for a set of IDs.
func idLess(ids []string) func(a, b string) bool {
	for _, id := range ids {
		if _, err := strconv.ParseInt(id, 10, 64); err != nil {
			return func(a, b string) bool { return a < b }
		}
	}

	return func(a, b string) bool {
		ai, _ := strconv.ParseInt(a, 10, 64)
		bi, _ := strconv.ParseInt(b, 10, 64)
		if ai != bi {
			return ai < bi
		}
		return a < b // "7" vs "07"
	}
}

func nodeIDs(nodes []Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}

	return ids
}
