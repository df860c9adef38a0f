// Package redist analyzes ensembles of districting plans produced by a
// redistricting simulation: it normalizes plans into a comparable canonical
// form, scores them on partisan fairness metrics, and measures how far apart
// plans are so that a trajectory can be tracked against reference plans.
//
// Everything is organized in small subpackages, leaves first:
//
//	canon/     — canonical Partition, Canonicalize, label contiguity checks
//	core/      — mutable, thread-safe graph builder used while loading a map
//	precinct/  — validated precinct Graph with vote and population columns
//	bfs/       — multi-source breadth-first search, randomized flood fill
//	matching/  — exact rectangular assignment (Hungarian) and cell matching
//	distance/  — unlabeled Hamming and entropy distances, batch Tuples
//	benchmark/ — efficiency gap, seats, mean-median, mean-thirdian, ...
//	towers/    — Generator contract, greedy max-min Select, RegionGrowth
//	ensemble/  — visit tallies, exploration curves, histogram convergence
//
// The command in cmd/redist wires these to CSV/JSON files, zap logging,
// YAML/TOML configuration and Prometheus metrics.
//
// Quick example, a 2×2 grid split two ways:
//
//	1 2      N N      W E
//	3 4      S S      W E
//
//	d, _ := distance.Hamming(nodes, northSouth, westEast) // d == 2
//
// All algorithm packages are pure: no global state, no logging, safe for
// concurrent use over a shared *precinct.Graph.
package redist
