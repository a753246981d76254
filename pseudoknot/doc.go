// Package pseudoknot resolves pseudoknots in nucleic-acid secondary
// structure: it partitions a set of base pairs into nesting levels
// ("orders") so that the order-0 subset is fully non-crossing, order-1 is
// the next planar layer once order-0 is removed, and so on — returning
// every tied globally optimal resolution.
//
// 🚀 What is a pseudoknot?
//
//	Two base pairs whose spans partially overlap without nesting cross each
//	other; no planar drawing of the structure can keep both on one side.
//	Pseudoknot resolution decides, for every crossing, which pair stays in
//	the planar backbone and which one is lifted to a higher order.
//
// ✨ Key features:
//   - regions: base pairs are grouped into maximal chains of consecutively
//     nested pairs and resolved as units
//   - conflict filtering: regions that never cross anything are fixed at
//     order 0 up front
//   - independent clusters: transitively overlapping regions are
//     partitioned into clusters and solved concurrently
//   - exhaustive optima: an interval DP enumerates every maximum-score
//     non-crossing region subset — ties are preserved, never broken
//   - weighted scoring: an optional per-pair scoring vector biases which
//     pairs the planar layer keeps (default weight 1 maximizes pair count)
//   - order cap: Options.MaxOrder bounds the number of removal passes;
//     base pairs beyond the cap are reported as OrderUnresolved
//
// ⚙️ Usage:
//
//	import "github.com/velmark/knotfold/pseudoknot"
//
//	pairs := []pseudoknot.BasePair{{I: 0, J: 3}, {I: 1, J: 4}, {I: 5, J: 6}}
//
//	opts := pseudoknot.DefaultOptions()
//	rows, err := pseudoknot.Resolve(pairs, &opts)
//	// rows[r][p] is the order of pairs[p] in the r-th tied resolution:
//	// [[0 1 0] [1 0 0]] — either crossing pair may anchor the backbone.
//
// Performance:
//
//   - Region building and sweeps: O(n log n) over n base pairs
//   - Solver: worst-case exponential in the number of stored ties per
//     cluster; real structures keep clusters small
//   - Clusters are mutually independent and solved in parallel
//     (Options.Workers)
//
// The package validates exactly one precondition (scoring-vector length);
// base pairs are taken as given — residue bookkeeping, file formats and
// structural annotations belong to the surrounding structure model.
//
// See examples in example_test.go for worked scenarios.
package pseudoknot
