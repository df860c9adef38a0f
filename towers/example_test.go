package towers_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/distance"
	"github.com/katalvlaran/redist/towers"
)

// ExampleSelect keeps the two most different plans of a 4-node pool.
func ExampleSelect() {
	pool := canon.CanonicalizeAll([][]int{
		{1, 1, 1, 2},
		{1, 1, 2, 2},
		{1, 2, 1, 2},
	})
	sel, err := towers.Select(context.Background(), pool, 2, distance.MetricHamming)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, t := range sel.Towers {
		fmt.Println(t)
	}
	fmt.Println("separation:", sel.MinSeparation())
	// Output:
	// (1,1,2,2)
	// (1,2,1,2)
	// separation: 2
}
