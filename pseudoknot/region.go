// Package pseudoknot - region detection.
//
// A region is a maximal chain of consecutively, strictly nested base pairs:
// each pair sits directly inside the previous one with no pair between.
// Regions are the unit everything downstream works on — a whole region is
// kept in or lifted out of the planar layer at once.
package pseudoknot

import "sort"

// region is one entry in the arena built by buildRegions. Two regions with
// identical (start, stop) are still distinct; all set logic downstream uses
// the arena handle id, never span equality.
type region struct {
	id      int   // arena handle, stable for the lifetime of one Resolve call
	start   int   // minimum residue index spanned
	stop    int   // maximum residue index spanned
	members []int // positions of the member base pairs in the input slice
}

// buildRegions groups base pairs into regions of consecutively nested
// pairs. Every base pair lands in exactly one region.
//
// Pairs are normalized so the smaller residue index comes first and sorted
// by left index; the rank of each right index under ascending order is
// computed. A left-to-right scan then extends the current chain while the
// previous pair's right rank exceeds the current one by exactly 1 (strict
// consecutive nesting) and closes the chain otherwise. The trailing chain
// is always closed.
//
// Complexity: O(n log n) time, O(n) space.
func buildRegions(pairs []BasePair) []*region {
	n := len(pairs)
	if n == 0 {
		return nil
	}

	// Normalize and remember each pair's position in the input slice: that
	// position is the column key of the final order matrix.
	type normalized struct {
		left, right, pos int
	}
	norm := make([]normalized, n)
	for p, bp := range pairs {
		l, r := bp.I, bp.J
		if l > r {
			l, r = r, l
		}
		norm[p] = normalized{left: l, right: r, pos: p}
	}
	sort.SliceStable(norm, func(a, b int) bool { return norm[a].left < norm[b].left })

	// rank[i] is the position pair i (in left-sorted order) would take if
	// all right endpoints were sorted ascending.
	byRight := make([]int, n)
	for i := range byRight {
		byRight[i] = i
	}
	sort.SliceStable(byRight, func(a, b int) bool { return norm[byRight[a]].right < norm[byRight[b]].right })
	rank := make([]int, n)
	for r, i := range byRight {
		rank[i] = r
	}

	var regions []*region
	var chain []int // indices into norm forming the region under construction
	closeChain := func() {
		start, stop := norm[chain[0]].left, norm[chain[0]].right
		members := make([]int, len(chain))
		for c, i := range chain {
			members[c] = norm[i].pos
			if norm[i].left < start {
				start = norm[i].left
			}
			if norm[i].right > stop {
				stop = norm[i].right
			}
		}
		regions = append(regions, &region{
			id:      len(regions),
			start:   start,
			stop:    stop,
			members: members,
		})
	}

	for i := 0; i < n; i++ {
		if len(chain) == 0 {
			chain = append(chain, i)
			continue
		}
		// Strict consecutive nesting: the previous pair's right endpoint
		// must rank exactly one above the current pair's.
		if rank[i-1]-rank[i] != 1 {
			closeChain()
			chain = chain[:0]
		}
		chain = append(chain, i)
	}
	closeChain()

	return regions
}

// regionScores sums the scoring vector over each region's members, indexed
// by arena handle. A region's score is a pure function of its fixed member
// set, so the slice is computed once and shared read-only across
// concurrently solved clusters.
func regionScores(regions []*region, scoring []float64) []float64 {
	scores := make([]float64, len(regions))
	for _, reg := range regions {
		var sum float64
		for _, m := range reg.members {
			sum += scoring[m]
		}
		scores[reg.id] = sum
	}
	return scores
}
