package pseudoknot

import "sort"

// event marks one endpoint of a region in the left-to-right sweep shared by
// the conflict filter, the cluster partitioner and the solver.
type event struct {
	pos   int // residue index the event occupies
	reg   *region
	start bool
}

// regionEvents lays out the start and stop events of regs in ascending
// residue-index order. At equal positions starts sort before stops, then
// lower arena handles first, so every downstream sweep is deterministic.
//
// Complexity: O(n log n) time, O(n) space for n regions.
func regionEvents(regs []*region) []event {
	events := make([]event, 0, 2*len(regs))
	for _, reg := range regs {
		events = append(events,
			event{pos: reg.start, reg: reg, start: true},
			event{pos: reg.stop, reg: reg, start: false},
		)
	}
	sort.SliceStable(events, func(a, b int) bool {
		if events[a].pos != events[b].pos {
			return events[a].pos < events[b].pos
		}
		if events[a].start != events[b].start {
			return events[a].start
		}
		return events[a].reg.id < events[b].reg.id
	})
	return events
}
