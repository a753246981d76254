// Package pseudoknot - shared types, options and sentinel errors.
package pseudoknot

import "errors"

// ErrScoringLength is returned when Options.Scoring is non-nil and its
// length differs from the number of base pairs. It is the only validated
// failure: out-of-range or duplicate residue indices are the caller's
// responsibility.
var ErrScoringLength = errors.New("pseudoknot: scoring vector length must equal base-pair count")

// OrderUnresolved marks base pairs whose order would exceed
// Options.MaxOrder. Rows never contain it unless a non-negative MaxOrder
// was set.
const OrderUnresolved = -1

// BasePair is a bond between two residue positions, referenced by their
// indices in an externally owned residue sequence. Orientation does not
// matter; pairs are normalized so the smaller index comes first.
type BasePair struct {
	I int
	J int
}

// Options configures pseudoknot resolution.
//
// Fields:
//   - Scoring  — one weight per base pair, same length and order as the
//     input slice. The planar layer of each pass maximizes the summed
//     weight of the pairs it keeps. nil means uniform weight 1, which
//     maximizes the number of kept pairs. Weights must be positive: a
//     non-positive weight lets a pass keep nothing, and resolution only
//     terminates because every pass keeps at least one region.
//   - MaxOrder — highest order to resolve. Pairs that would need a higher
//     order are reported as OrderUnresolved and not untangled further.
//     Negative means unlimited.
//   - Workers  — upper bound on concurrently solved conflict clusters.
//     Zero or negative means GOMAXPROCS. The result does not depend on it.
//
// Example:
//
//	opts := pseudoknot.DefaultOptions()
//	opts.Scoring = weights // prefer high-confidence pairs in the backbone
//	opts.MaxOrder = 2      // give up on anything knotted deeper than that
//
//	rows, err := pseudoknot.Resolve(pairs, &opts)
type Options struct {
	Scoring  []float64
	MaxOrder int
	Workers  int
}

// DefaultOptions returns the canonical defaults: uniform scoring, unlimited
// order depth, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Scoring:  nil,
		MaxOrder: -1,
		Workers:  0,
	}
}
