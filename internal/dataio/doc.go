// Package dataio reads graphs and plans from CSV and JSON and writes score
// and distance tables as CSV.
//
// Input formats:
//
//	nodes.csv   header row with an "id" column; every other column whose
//	            non-empty cells all parse as numbers becomes a node attribute.
//	edges.csv   header row "from,to".
//	plans.csv   row form: one plan per row, labels in graph node order.
//	            table form: a header row of node IDs (any order), then one
//	            plan per row.
//	plans.json  an array of {"node": label} objects; labels may be strings
//	            or numbers.
//
// All plans are canonicalized on the way in.
package dataio
