// Package pseudoknot - the dynamic-programming core.
//
// For one conflict cluster the solver enumerates every maximum-score,
// pairwise non-crossing subset of the cluster's regions. Ties are
// preserved in full; the order assigner branches on each of them.
package pseudoknot

import "sort"

// clusterLayout indexes one cluster for the solver: its 2k endpoint slots
// in ascending residue order, the cluster-local region index owning each
// slot, and each region's start/stop slot.
type clusterLayout struct {
	regions   []*region
	slotOwner []int  // slot -> index into regions
	slotStart []bool // slot -> true when it is the owner's start event
	startSlot []int  // region index -> slot of its start event
	stopSlot  []int  // region index -> slot of its stop event
}

func layoutCluster(cluster []*region) *clusterLayout {
	index := make(map[int]int, len(cluster)) // arena handle -> cluster index
	for i, reg := range cluster {
		index[reg.id] = i
	}

	events := regionEvents(cluster)
	lay := &clusterLayout{
		regions:   cluster,
		slotOwner: make([]int, len(events)),
		slotStart: make([]bool, len(events)),
		startSlot: make([]int, len(cluster)),
		stopSlot:  make([]int, len(cluster)),
	}
	for s, ev := range events {
		ri := index[ev.reg.id]
		lay.slotOwner[s] = ri
		lay.slotStart[s] = ev.start
		if ev.start {
			lay.startSlot[ri] = s
		} else {
			lay.stopSlot[ri] = s
		}
	}
	return lay
}

// span returns the lowest start slot and highest stop slot used by the
// members of s, or (-1, -1) for the empty set.
func (lay *clusterLayout) span(s regionSet) (lo, hi int) {
	lo, hi = -1, -1
	s.each(func(i int) {
		if lo == -1 || lay.startSlot[i] < lo {
			lo = lay.startSlot[i]
		}
		if hi == -1 || lay.stopSlot[i] > hi {
			hi = lay.stopSlot[i]
		}
	})
	return lo, hi
}

// score sums the cached region scores over the members of s.
func (lay *clusterLayout) score(s regionSet, scores []float64) float64 {
	var sum float64
	s.each(func(i int) { sum += scores[lay.regions[i].id] })
	return sum
}

// anyNonEmpty reports whether cands holds at least one non-empty solution.
func anyNonEmpty(cands []regionSet) bool {
	for _, s := range cands {
		if !s.empty() {
			return true
		}
	}
	return false
}

// optimalSolutions computes every maximum-score, pairwise non-crossing
// subset of the cluster's regions.
//
// The table cell(i, j), 0 ≤ i ≤ j < 2k over the cluster's endpoint slots,
// holds all maximum-score non-crossing subsets whose regions' endpoints
// both lie within [i, j]. Cells are filled in increasing span j-i:
//
//	base     — cell(i,i) = {∅}
//	inherit  — all candidates of cell(i,j-1) and cell(i+1,j)
//	closure  — when slots i and j are the endpoints of the same region R,
//	           every candidate of cell(i+1,j-1) extended by R
//	cross    — for S1 ∈ cell(i,j-1), S2 ∈ cell(i+1,j): when S1's span ends
//	           before S2's begins their union is valid as-is; when the
//	           spans overlap, every split cell(i,k) × cell(k+1,j) between
//	           the overlapping bounds is recombined instead, recovering
//	           combinations the direct parents cannot express
//
// Only candidates reaching the cell's maximum score are kept, deduplicated
// structurally. cell(0, 2k-1) is returned in stable bitset-key order.
//
// Complexity: worst-case exponential in the number of stored ties; real
// inputs keep clusters small.
func optimalSolutions(lay *clusterLayout, scores []float64) []regionSet {
	k := len(lay.regions)
	m := 2 * k
	empty := newRegionSet(k)

	dp := make([][][]regionSet, m)
	for i := range dp {
		dp[i] = make([][]regionSet, m)
		dp[i][i] = []regionSet{empty}
	}

	for j := 1; j < m; j++ {
		for i := j - 1; i >= 0; i-- {
			cands := make(map[string]regionSet)
			add := func(s regionSet) { cands[s.key()] = s }

			left := dp[i][j-1]
			bottom := dp[i+1][j]
			for _, s := range left {
				add(s)
			}
			for _, s := range bottom {
				add(s)
			}

			// Slots i and j close the same region: wrap it around every
			// candidate strictly inside.
			if lay.slotOwner[i] == lay.slotOwner[j] && lay.slotStart[i] && !lay.slotStart[j] {
				inner := []regionSet{empty}
				if i+1 <= j-1 {
					inner = dp[i+1][j-1]
				}
				for _, s := range inner {
					add(s.with(lay.slotOwner[i]))
				}
			}

			// Cross term: only worth attempting when both parents carry a
			// non-empty candidate (unions with ∅ are already inherited).
			if anyNonEmpty(left) && anyNonEmpty(bottom) {
				for _, s1 := range left {
					if s1.empty() {
						continue
					}
					_, hi := lay.span(s1)
					for _, s2 := range bottom {
						if s2.empty() {
							continue
						}
						lo, _ := lay.span(s2)
						if hi < lo {
							// Positionally disjoint: combine directly.
							add(s1.union(s2))
							continue
						}
						// Overlapping spans: recombine through every split
						// slot between the overlapping bounds. s2 lives in
						// [i+1, j] and s1 in [i, j-1], so lo-1 ≥ i and
						// hi+1 ≤ j keep both sub-cells inside the table.
						for split := lo - 1; split <= hi; split++ {
							for _, sub1 := range dp[i][split] {
								for _, sub2 := range dp[split+1][j] {
									add(sub1.union(sub2))
								}
							}
						}
					}
				}
			}

			dp[i][j] = retainBest(lay, cands, scores)
		}
	}

	return dp[0][m-1]
}

// retainBest keeps only the candidates achieving the maximum score, in
// stable bitset-key order.
func retainBest(lay *clusterLayout, cands map[string]regionSet, scores []float64) []regionSet {
	keys := make([]string, 0, len(cands))
	for key := range cands {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	best := 0.0
	first := true
	for _, key := range keys {
		if sc := lay.score(cands[key], scores); first || sc > best {
			best = sc
			first = false
		}
	}

	kept := make([]regionSet, 0, len(keys))
	for _, key := range keys {
		if lay.score(cands[key], scores) == best {
			kept = append(kept, cands[key])
		}
	}
	return kept
}
