// SPDX-License-Identifier: MIT

package canon

// CheckContiguous verifies that l uses exactly the labels 1..k, each at least
// once, and returns k. It accepts labelings that are valid but not canonical
// (e.g. 2 2 1 1); scoring code relies on this to index districts by label-1.
//
// Errors:
//   - *CanonicalFormError for a label < 1, a label > k, or an empty labeling.
//
// Complexity: O(N) time, O(k) space.
func CheckContiguous(l Labeling) (int, error) {
	if p, ok := l.(Partition); ok {
		if p.IsZero() {
			return 0, &CanonicalFormError{Label: 1, Districts: 0}
		}
		return p.Districts(), nil
	}
	n := l.Len()
	if n == 0 {
		return 0, &CanonicalFormError{Label: 1, Districts: 0}
	}
	seen := make(map[int]struct{})
	maxLabel := 0
	for i := 0; i < n; i++ {
		lab := l.Label(i)
		if lab < 1 {
			return 0, &CanonicalFormError{Label: lab, Districts: len(seen)}
		}
		seen[lab] = struct{}{}
		if lab > maxLabel {
			maxLabel = lab
		}
	}
	k := len(seen)
	if maxLabel != k {
		// Some value in 1..maxLabel is absent; report the smallest one.
		for d := 1; d <= maxLabel; d++ {
			if _, ok := seen[d]; !ok {
				return 0, &CanonicalFormError{Label: d, Districts: k}
			}
		}
	}

	return k, nil
}
