// SPDX-License-Identifier: MIT

package canon

import (
	"errors"
	"fmt"
)

// Sentinel errors for canonicalization. Match with errors.Is; the typed errors
// below unwrap to these.
var (
	// ErrMapping indicates an assignment that is not total over the node order:
	// a node without a label, or a label given to a node outside the order.
	ErrMapping = errors.New("canon: malformed assignment")

	// ErrCanonicalForm indicates a labeling whose labels are not exactly 1..k.
	// It signals that a non-canonical plan reached code that requires one.
	ErrCanonicalForm = errors.New("canon: labels are not contiguous 1..k")
)

// MappingError reports the node that broke an assignment.
type MappingError struct {
	// Node is the offending node identifier.
	Node string

	// Reason is "missing" (node has no label) or "unknown" (label for a node
	// that is not part of the order).
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("canon: malformed assignment: node %q %s", e.Node, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMapping) succeed.
func (e *MappingError) Unwrap() error { return ErrMapping }

// CanonicalFormError reports the label that violated the 1..k contract.
type CanonicalFormError struct {
	// Label is the first offending label (out of range), or the first missing
	// label when the labeling has a gap.
	Label int

	// Districts is the number of distinct labels observed.
	Districts int
}

func (e *CanonicalFormError) Error() string {
	return fmt.Sprintf("canon: label %d breaks contiguous range 1..%d", e.Label, e.Districts)
}

// Unwrap lets errors.Is(err, ErrCanonicalForm) succeed.
func (e *CanonicalFormError) Unwrap() error { return ErrCanonicalForm }
