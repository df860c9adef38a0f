// Package ensemble summarizes a sampled sequence of canonical plans: how often
// each plan was visited, how quickly new plans are discovered, and how close
// the sampled distribution of a plan feature is to the true one.
//
// Inputs are canon.Partition values, which are comparable and therefore usable
// as map keys directly. Every function is pure.
//
//	Tally                   visit count per distinct plan.
//	EnumerationFrequencies  visit count of every plan of a full enumeration.
//	ExplorationCounts       distinct plans among the first i steps.
//	SortedFrequencies       ascending visit counts, zero-padded for unseen plans.
//	Histogram               density histogram over fixed bin edges.
//	HistogramErrors         L1 distance of the running sample histogram to a
//	                        reference histogram.
package ensemble
