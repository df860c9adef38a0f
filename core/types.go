// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates a second AddVertex for an existing ID.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is one precinct.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata holds numeric node attributes. Graph keeps its own copy.
	Metadata map[string]float64
}

// Edge is an undirected adjacency. Edges() reports each one with From < To.
type Edge struct {
	From string
	To   string
}

// Graph is the mutable, concurrency-safe precinct graph builder.
//
// muVert protects vertices; muEdgeAdj protects adjacency and the edge count.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edges

	vertices map[string]*Vertex

	// adjacency[u][v] exists iff the undirected edge u–v exists (mirrored).
	adjacency map[string]map[string]struct{}
	edges     int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
}
