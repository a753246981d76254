// Package pseudoknot - order assignment and the public entry point.
package pseudoknot

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Resolve partitions base pairs into pseudoknot order levels and returns
// one row per globally optimal resolution: rows[r][p] is the order assigned
// to pairs[p] in the r-th tied resolution. Order 0 is the planar backbone;
// order o+1 pairs become planar once every order ≤ o pair is removed.
//
// Contracts:
//   - Zero-conflict input yields exactly one all-zero row; empty input
//     yields one row of length zero.
//   - All tied optima are returned; no tie-break is applied. Rows are
//     emitted in a stable order across runs.
//   - Base pairs are not validated; callers pre-sanitize indices.
//
// Errors: ErrScoringLength when a non-nil scoring vector's length differs
// from len(pairs).
//
// Complexity: O(n log n) outside the solver; the solver is worst-case
// exponential in stored ties per cluster (see optimalSolutions).
func Resolve(pairs []BasePair, opts *Options) ([][]int, error) {
	defaults := DefaultOptions()
	if opts == nil {
		opts = &defaults
	}

	// Stage 1 - the single validated precondition.
	if opts.Scoring != nil && len(opts.Scoring) != len(pairs) {
		return nil, ErrScoringLength
	}
	scoring := opts.Scoring
	if scoring == nil {
		scoring = make([]float64, len(pairs))
		for i := range scoring {
			scoring[i] = 1
		}
	}

	// Stage 2 - regions, conflict filter, clusters. Base pairs outside any
	// conflicting region stay at order 0 in every row.
	rows := [][]int{make([]int, len(pairs))}
	regions := buildRegions(pairs)
	conflicting := removeNonConflicting(regions)
	if len(conflicting) == 0 {
		return rows, nil
	}
	clusters := clusterConflicts(conflicting)

	// Stage 3 - solve mutually independent clusters concurrently. The
	// assigner state is read-only once built, so no locking is needed.
	asn := &assigner{
		nPairs:   len(pairs),
		scores:   regionScores(regions, scoring),
		maxOrder: opts.MaxOrder,
	}
	clusterRows := make([][][]int, len(clusters))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for c, cluster := range clusters {
		c, cluster := c, cluster
		g.Go(func() error {
			clusterRows[c] = asn.assignOrders(cluster, 0)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait only joins

	// Stage 4 - clusters assign orders to disjoint columns: the final
	// matrix is the cross product of their row sets.
	for _, rs := range clusterRows {
		rows = crossMerge(rows, rs)
	}
	return rows, nil
}

// assigner carries the immutable per-call state of the order-assignment
// recursion: the column count, the shared region score cache and the order
// cap.
type assigner struct {
	nPairs   int
	scores   []float64
	maxOrder int
}

// assignOrders resolves one conflict cluster into full-length order rows.
// depth is the number of removal passes already applied: regions excluded
// from an optimal solution at this depth put their base pairs at order
// depth+1.
//
// For every tied optimal solution, the excluded regions are conflict-
// filtered and re-partitioned; surviving conflicts recurse, contributing
// one merged row per downstream tie. Each pass removes at least one region
// and recurses only on the removed set, so the conflicting set strictly
// shrinks and the recursion terminates.
func (a *assigner) assignOrders(cluster []*region, depth int) [][]int {
	lay := layoutCluster(cluster)
	solutions := optimalSolutions(lay, a.scores)

	var rows [][]int
	for _, sol := range solutions {
		removed := make([]*region, 0, len(cluster))
		for i, reg := range cluster {
			if !sol.has(i) {
				removed = append(removed, reg)
			}
		}

		row := make([]int, a.nPairs)
		if a.maxOrder >= 0 && depth+1 > a.maxOrder {
			// Order cap hit. Everything a deeper pass could still touch is
			// part of the removed set, so marking it covers all of it.
			for _, reg := range removed {
				for _, m := range reg.members {
					row[m] = OrderUnresolved
				}
			}
			rows = append(rows, row)
			continue
		}
		for _, reg := range removed {
			for _, m := range reg.members {
				row[m] = depth + 1
			}
		}

		// The removed regions may still conflict among themselves.
		next := removeNonConflicting(removed)
		if len(next) == 0 {
			rows = append(rows, row)
			continue
		}
		sub := [][]int{make([]int, a.nPairs)}
		for _, nextCluster := range clusterConflicts(next) {
			sub = crossMerge(sub, a.assignOrders(nextCluster, depth+1))
		}
		for _, s := range sub {
			rows = append(rows, overlayRow(row, s))
		}
	}
	return rows
}

// overlayRow merges a deeper pass's row into base: positions the deeper
// pass assigned win, everything else keeps the base value. Deeper rows
// only touch base pairs the base row already marked removed.
func overlayRow(base, sub []int) []int {
	out := make([]int, len(base))
	for i := range base {
		if sub[i] != 0 {
			out[i] = sub[i]
		} else {
			out[i] = base[i]
		}
	}
	return out
}

// crossMerge combines the row sets of two independently resolved groups:
// every pairing of one row from each. The groups assign orders to disjoint
// columns, so overlaying loses nothing.
func crossMerge(a, b [][]int) [][]int {
	out := make([][]int, 0, len(a)*len(b))
	for _, ra := range a {
		for _, rb := range b {
			out = append(out, overlayRow(ra, rb))
		}
	}
	return out
}
