// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: vertex and edge lifecycle and read-only queries.
//
// Concurrency:
//   - Lock order is muVert before muEdgeAdj; no method holds both for writing.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with a copy of meta.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, reject duplicates and register the vertex.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap its adjacency bucket.
//
// Errors: ErrEmptyVertexID, ErrDuplicateVertex (wrapped with the ID).
// Complexity: O(len(meta)).
func (g *Graph) AddVertex(id string, meta map[string]float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	cp := make(map[string]float64, len(meta))
	for k, v := range meta {
		cp[k] = v
	}

	g.muVert.Lock()
	if _, ok := g.vertices[id]; ok {
		g.muVert.Unlock()
		return fmt.Errorf("AddVertex(%q): %w", id, ErrDuplicateVertex)
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: cp}
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	g.ensureAdj(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// ensureAdj creates the adjacency bucket of id. Caller holds muEdgeAdj.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Metadata returns a copy of the vertex's attributes.
// Errors: ErrVertexNotFound.
func (g *Graph) Metadata(id string) (map[string]float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Metadata(%q): %w", id, ErrVertexNotFound)
	}
	out := make(map[string]float64, len(v.Metadata))
	for k, x := range v.Metadata {
		out[k] = x
	}

	return out, nil
}

// AddEdge records the undirected adjacency from–to. Both endpoints must
// already exist; adding an existing edge again is a no-op.
// Errors: ErrVertexNotFound, ErrLoopNotAllowed (wrapped with the endpoints).
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("AddEdge(%q, %q): %q: %w", from, to, from, ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("AddEdge(%q, %q): %q: %w", from, to, to, ErrVertexNotFound)
	}
	if from == to {
		return fmt.Errorf("AddEdge(%q, %q): %w", from, to, ErrLoopNotAllowed)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.adjacency[from][to]; ok {
		return nil
	}
	g.ensureAdj(from)
	g.ensureAdj(to)
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether from–to exists. Unknown vertices yield false.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the sorted neighbors of id.
// Errors: ErrVertexNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every edge once, with From < To, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edges
}
