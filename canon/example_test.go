package canon_test

import (
	"fmt"

	"github.com/katalvlaran/redist/canon"
)

// ExampleCanonicalize shows that district names do not survive normalization:
// only which nodes share a district, and in what order districts first appear.
func ExampleCanonicalize() {
	a := canon.Canonicalize([]int{3, 1, 2, 1})
	b := canon.Canonicalize([]string{"blue", "red", "green", "red"})

	fmt.Println(a)
	fmt.Println(a == b)
	// Output:
	// (1,2,3,2)
	// true
}

// ExampleFromAssignment canonicalizes a node→district map along a fixed order.
func ExampleFromAssignment() {
	order := []string{"p1", "p2", "p3", "p4"}
	assignment := map[string]string{"p1": "D7", "p2": "D7", "p3": "D2", "p4": "D2"}

	p, err := canon.FromAssignment(order, assignment)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p, p.Districts())
	// Output:
	// (1,1,2,2) 2
}
