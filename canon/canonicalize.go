// SPDX-License-Identifier: MIT

package canon

// Canonicalize maps a label sequence to its canonical Partition.
//
// Implementation:
//   - Stage 1: scan labels once; the first never-seen label gets 1, the next 2, ...
//   - Stage 2: emit the substituted label for every position during the same scan.
//
// The result depends only on which positions share a label and on the order in
// which distinct labels first appear, never on the label values themselves.
//
// Complexity: O(N) expected time, O(N + k) space.
func Canonicalize[L comparable](labels []L) Partition {
	table := make(map[L]uint32) // original label → canonical label, built lazily
	out := make([]uint32, len(labels))
	var next uint32
	for i, l := range labels {
		c, ok := table[l]
		if !ok {
			next++
			c = next
			table[l] = c
		}
		out[i] = c
	}

	return pack(out, int(next))
}

// FromLabeling canonicalizes any integer Labeling. It is cheap for values that
// are already canonical and is how consumers defensively normalize plans
// supplied by collaborators (towers, external enumerations).
// Complexity: O(N).
func FromLabeling(l Labeling) Partition {
	if p, ok := l.(Partition); ok {
		return p
	}
	n := l.Len()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = l.Label(i)
	}

	return Canonicalize(labels)
}

// FromAssignment converts a node→label mapping into a Partition using the
// given node order (normally precinct.Graph.Order()).
//
// Every node in order must be labeled and the mapping must not label any node
// outside the order; otherwise a *MappingError is returned. Nothing is dropped
// or zero-filled.
//
// Complexity: O(N).
func FromAssignment[L comparable](order []string, assignment map[string]L) (Partition, error) {
	labels, err := Sequence(order, assignment)
	if err != nil {
		return Partition{}, err
	}

	return Canonicalize(labels), nil
}

// Sequence lays an assignment out along the node order without relabeling.
// It performs the same totality checks as FromAssignment.
func Sequence[L comparable](order []string, assignment map[string]L) ([]L, error) {
	labels := make([]L, len(order))
	for i, node := range order {
		l, ok := assignment[node]
		if !ok {
			return nil, &MappingError{Node: node, Reason: "missing"}
		}
		labels[i] = l
	}
	// Every order entry was found; a size difference means extra keys.
	if len(assignment) != len(order) {
		return nil, &MappingError{Node: firstUnknown(order, assignment), Reason: "unknown"}
	}

	return labels, nil
}

// CanonicalizeAll canonicalizes a trajectory, each plan independently.
// Complexity: O(total labels).
func CanonicalizeAll[L comparable](plans [][]L) []Partition {
	out := make([]Partition, len(plans))
	for i, p := range plans {
		out[i] = Canonicalize(p)
	}

	return out
}

// FromAssignments is the trajectory form of FromAssignment. It stops at the
// first malformed assignment.
func FromAssignments[L comparable](order []string, assignments []map[string]L) ([]Partition, error) {
	out := make([]Partition, len(assignments))
	for i, a := range assignments {
		p, err := FromAssignment(order, a)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// firstUnknown finds a key of assignment that is absent from order. Keys are
// scanned in map order, so with several unknown nodes any one may be reported.
func firstUnknown[L comparable](order []string, assignment map[string]L) string {
	known := make(map[string]struct{}, len(order))
	for _, n := range order {
		known[n] = struct{}{}
	}
	for n := range assignment {
		if _, ok := known[n]; !ok {
			return n
		}
	}

	return ""
}
