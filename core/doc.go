// Package core provides the thread-safe, mutable precinct graph used while a
// map is being loaded, before it is frozen into a *precinct.Graph.
//
// The Graph G = (V,E) is undirected and unweighted:
//
//   - Vertices carry a string ID (usually a GEOID) and numeric Metadata
//     (vote counts, population, any other numeric column).
//   - Edges are undirected adjacencies; repeated edges collapse into one.
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), so loaders may add vertices and edges from several
//     goroutines.
//
// Why a separate builder type?
//
//   - Loaders add precincts and adjacencies incrementally and in any order.
//   - Analysis wants dense, immutable, position-indexed columns. precinct.FromCore
//     validates a finished core.Graph once and produces exactly that.
//
// Core Methods:
//
//	AddVertex(id string, meta map[string]float64) error // O(len(meta))
//	HasVertex(id string) bool                           // O(1)
//	Metadata(id string) (map[string]float64, error)     // O(len(meta)), copy
//	AddEdge(from, to string) error                      // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//	NeighborIDs(id string) ([]string, error)            // O(d log d)
//	Vertices() []string                                 // O(V log V)
//	Edges() []Edge                                      // O(E log E)
//	VertexCount(), EdgeCount()                          // O(1)
//
// Determinism:
//
//	Vertices, NeighborIDs and Edges return results sorted lexicographically.
package core
