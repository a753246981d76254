package pseudoknot

// removeNonConflicting drops every region that takes part in no crossing
// and returns the survivors in input order.
//
// For each region the events strictly between its own start and stop are
// counted per foreign region. No foreign events means the region is
// isolated; every foreign region contributing exactly two events is fully
// nested inside it. Both cases leave the region crossing-free, so it is
// removed. Decisions are taken against the full event sequence first and
// applied together afterwards, so removals never unlock further removals
// within one call.
//
// Only immediately isolated wrappers are caught: in an alternating pattern
// such as A B C B' C' A' the outer region A still sees single events from B
// and C and survives. Such clusters are resolved by the solver instead.
//
// Complexity: O(n²) worst case over n regions.
func removeNonConflicting(regs []*region) []*region {
	if len(regs) == 0 {
		return nil
	}
	events := regionEvents(regs)

	drop := make(map[*region]bool)
	for s, ev := range events {
		if !ev.start {
			continue
		}
		// The next event of the same region is its stop; count every
		// foreign event in between.
		counts := make(map[*region]int)
		for e := s + 1; events[e].reg != ev.reg; e++ {
			counts[events[e].reg]++
		}
		conflicting := false
		for _, c := range counts {
			if c != 2 {
				conflicting = true
				break
			}
		}
		if !conflicting {
			drop[ev.reg] = true
		}
	}

	kept := make([]*region, 0, len(regs))
	for _, reg := range regs {
		if !drop[reg] {
			kept = append(kept, reg)
		}
	}
	return kept
}
