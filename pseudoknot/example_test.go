package pseudoknot_test

import (
	"fmt"

	"github.com/velmark/knotfold/pseudoknot"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleResolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three base pairs: (0,3) and (1,4) cross each other — a pseudoknot —
//	while (5,6) sits apart and conflicts with nothing.
//
// Either crossing pair may anchor the planar backbone, and with uniform
// scoring the two choices tie: both resolutions are returned, one row each.
// The isolated pair stays at order 0 everywhere.
func ExampleResolve() {
	pairs := []pseudoknot.BasePair{{I: 0, J: 3}, {I: 1, J: 4}, {I: 5, J: 6}}

	rows, err := pseudoknot.Resolve(pairs, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range rows {
		fmt.Println(row)
	}
	// Output:
	// [0 1 0]
	// [1 0 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleResolve_weighted
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same crossing, but the first pair carries twice the weight — say it
//	is a high-confidence bond. The tie disappears: the backbone keeps the
//	heavy pair and only one resolution remains.
func ExampleResolve_weighted() {
	pairs := []pseudoknot.BasePair{{I: 0, J: 3}, {I: 1, J: 4}, {I: 5, J: 6}}

	opts := pseudoknot.DefaultOptions()
	opts.Scoring = []float64{2, 1, 1}

	rows, err := pseudoknot.Resolve(pairs, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range rows {
		fmt.Println(row)
	}
	// Output:
	// [0 1 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleResolve_maxOrder
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three mutually crossing pairs need orders 0, 1 and 2 to untangle fully.
//	With MaxOrder = 1 the third level is never computed: pairs that would
//	exceed the cap come back as OrderUnresolved (-1).
func ExampleResolve_maxOrder() {
	pairs := []pseudoknot.BasePair{{I: 0, J: 4}, {I: 2, J: 6}, {I: 3, J: 8}}

	opts := pseudoknot.DefaultOptions()
	opts.MaxOrder = 1

	rows, err := pseudoknot.Resolve(pairs, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(rows), "tied resolutions")
	fmt.Println(rows[0])
	// Output:
	// 6 tied resolutions
	// [0 1 -1]
}
