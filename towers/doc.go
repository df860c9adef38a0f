// Package towers picks a small set of mutually distant reference plans
// ("towers") against which a simulation trajectory is tracked.
//
// Tower generation is a collaborator: anything implementing Generator may
// supply towers, and the rest of redist only relies on the output contract
// (a short list of canonical plans, pairwise far apart under one metric).
//
// The package ships one Generator, Pool, which over-samples candidates from a
// CandidateSource and keeps the most spread-out subset:
//
//	candidates := Source.Candidates(count × Oversample)   // default ×5
//	deduplicate
//	Select(candidates, count, metric)
//
// Select is a greedy max-min (farthest-point) selection:
//
//  1. compute all pairwise distances (entropy is symmetrized);
//  2. start from the farthest pair (or candidate 0 when count == 1);
//  3. repeatedly add the candidate whose nearest chosen tower is farthest.
//
// Ties are broken by the lowest candidate index, so Select is deterministic.
//
// RegionGrowth is a simple CandidateSource: randomized multi-source flood fill
// over the precinct adjacency, seeded for reproducibility. Its plans are
// contiguous whenever every connected component receives a seed.
package towers
