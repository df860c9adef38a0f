// SPDX-License-Identifier: MIT
//
// File: partition.go
// Role: Labeling abstraction, the plain Labels plan and the canonical Partition value.
// Policy:
//   - Partition is immutable and comparable; it is built only by this package.
//   - Label lookups are O(1) (fixed-width encoding, 4 bytes per node).

package canon

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// labelWidth is the number of bytes used per node in a Partition key.
const labelWidth = 4

// Labeling is a read-only integer plan: position i holds the district label of
// the i-th node in the fixed node order.
type Labeling interface {
	// Len returns the number of nodes covered by the plan.
	Len() int

	// Label returns the district label of the node at position i.
	Label(i int) int
}

// Labels is a plain integer plan. It carries no canonical guarantee; use it for
// raw simulator output and for tests that exercise non-canonical input.
type Labels []int

// Len implements Labeling.
func (l Labels) Len() int { return len(l) }

// Label implements Labeling.
func (l Labels) Label(i int) int { return l[i] }

// Partition is a plan in canonical form. The zero value is the empty plan.
//
// Partition is a comparable value: use it directly as a map key or with ==.
// Internally the labels are packed into a string, labelWidth bytes per node,
// which keeps Label(i) O(1) and equality a single string comparison.
type Partition struct {
	key       string // packed little-endian uint32 labels
	districts int    // number of distinct labels (== max label)
}

// Len returns the number of nodes in the plan.
// Complexity: O(1).
func (p Partition) Len() int { return len(p.key) / labelWidth }

// Label returns the canonical label (1..Districts) at position i.
// It panics if i is out of range, like slice indexing.
// Complexity: O(1).
func (p Partition) Label(i int) int {
	s := p.key[i*labelWidth : i*labelWidth+labelWidth]
	// Decode by hand: converting the substring to []byte would allocate.
	return int(uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24)
}

// Districts returns k, the number of distinct districts.
func (p Partition) Districts() int { return p.districts }

// IsZero reports whether p is the empty plan.
func (p Partition) IsZero() bool { return p.key == "" }

// Labels returns a fresh copy of the labels as a plain slice.
// Complexity: O(N).
func (p Partition) Labels() Labels {
	n := p.Len()
	out := make(Labels, n)
	for i := 0; i < n; i++ {
		out[i] = p.Label(i)
	}

	return out
}

// Cells returns the node positions of every district: Cells()[d-1] lists, in
// ascending order, the positions labeled d.
// Complexity: O(N).
func (p Partition) Cells() [][]int {
	cells := make([][]int, p.districts)
	n := p.Len()
	for i := 0; i < n; i++ {
		d := p.Label(i) - 1
		cells[d] = append(cells[d], i)
	}

	return cells
}

// String renders the plan as "(1,2,3,2)".
func (p Partition) String() string {
	var b strings.Builder
	b.WriteByte('(')
	n := p.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p.Label(i)))
	}
	b.WriteByte(')')

	return b.String()
}

// pack encodes canonical labels into a Partition. The caller guarantees the
// labels are canonical and that districts equals the largest label.
func pack(labels []uint32, districts int) Partition {
	buf := make([]byte, len(labels)*labelWidth)
	for i, l := range labels {
		binary.LittleEndian.PutUint32(buf[i*labelWidth:], l)
	}

	return Partition{key: string(buf), districts: districts}
}
