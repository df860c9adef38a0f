// Package benchmark scores districting plans on partisan fairness metrics.
//
// Every score takes a *precinct.Graph (democratic and republican vote columns,
// optional population) and a list of plans, and returns one float64 per plan,
// index-aligned with the input.
//
//	EfficiencyGap     Σ(dem wasted − rep wasted) / total votes. The loser of a
//	                  district wastes all its votes, the winner the votes above
//	                  total/2; an exact tie counts the republican side as the
//	                  winner. Positive favors republicans.
//	DemSeats          districts won by democrats; a tie is half a seat.
//	RepSeats          k − DemSeats.
//	MeanMedian        mean(dem share) − median(dem share).
//	MeanThirdian      mean(dem share) − sorted(dem share)[round(k/3)].
//	PartitionEntropy  −Σ size·ln(size) over districts (node counts).
//	PopulationDeviation  max |pop_d − ideal| / ideal, ideal = total/k.
//
// Plans:
//
//	Any canon.Labeling whose labels are exactly 1..k is accepted; canonical
//	form is not required, so the scores are directly testable for invariance
//	under district relabeling. A gap in the labels is a *canon.CanonicalFormError:
//	it means an un-normalized plan slipped through upstream.
//
// Degenerate districts:
//
//	A district with zero total votes has no vote share and no majority
//	threshold. EfficiencyGap, MeanMedian and MeanThirdian report it as a
//	*DegenerateDistrictError instead of producing NaN. Seat counts treat it as
//	a tie.
//
// Score runs any of the above over a batch in parallel with fail-fast or
// best-effort semantics. The plain functions (EfficiencyGap, DemSeats, ...)
// go through Score and honor the same options; in best-effort mode a
// skipped plan is NaN in their output.
package benchmark
