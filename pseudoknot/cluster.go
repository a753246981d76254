package pseudoknot

// clusterConflicts partitions regs into maximal groups of transitively
// overlapping regions: +1 at each start event, -1 at each stop event, and
// whenever the running total returns to zero the regions opened since the
// previous zero-crossing form one complete cluster. Every region belongs
// to exactly one cluster, and clusters never need information from one
// another downstream.
//
// Complexity: O(n log n) time over n regions.
func clusterConflicts(regs []*region) [][]*region {
	if len(regs) == 0 {
		return nil
	}

	var (
		clusters [][]*region
		current  []*region
		depth    int
	)
	for _, ev := range regionEvents(regs) {
		if ev.start {
			depth++
			current = append(current, ev.reg)
			continue
		}
		depth--
		if depth == 0 {
			clusters = append(clusters, current)
			current = nil
		}
	}
	// Events are balanced, so the sweep closes at depth zero; flush the
	// trailing window anyway.
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}
