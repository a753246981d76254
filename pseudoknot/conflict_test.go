package pseudoknot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spans extracts (start, stop) tuples for readable assertions; the filter
// itself never compares regions by span.
func spans(regs []*region) [][2]int {
	out := make([][2]int, len(regs))
	for i, reg := range regs {
		out[i] = [2]int{reg.start, reg.stop}
	}
	return out
}

// TestRemoveNonConflicting_Empty verifies the trivial case.
func TestRemoveNonConflicting_Empty(t *testing.T) {
	assert.Nil(t, removeNonConflicting(nil))
}

// TestRemoveNonConflicting_IsolatedDropped verifies that a lone region is
// removed.
func TestRemoveNonConflicting_IsolatedDropped(t *testing.T) {
	regs := buildRegions([]BasePair{{I: 0, J: 5}, {I: 1, J: 4}})
	require.Len(t, regs, 1)

	assert.Empty(t, removeNonConflicting(regs))
}

// TestRemoveNonConflicting_DisjointDropped verifies that side-by-side
// regions never conflict.
func TestRemoveNonConflicting_DisjointDropped(t *testing.T) {
	regs := buildRegions([]BasePair{{I: 0, J: 1}, {I: 2, J: 3}})
	require.Len(t, regs, 2)

	assert.Empty(t, removeNonConflicting(regs))
}

// TestRemoveNonConflicting_CrossingKept verifies that a crossing pair of
// regions survives the filter.
func TestRemoveNonConflicting_CrossingKept(t *testing.T) {
	regs := buildRegions([]BasePair{{I: 0, J: 3}, {I: 1, J: 4}})
	require.Len(t, regs, 2)

	kept := removeNonConflicting(regs)
	assert.ElementsMatch(t, [][2]int{{0, 3}, {1, 4}}, spans(kept))
}

// TestRemoveNonConflicting_WrapperDropped verifies that a region fully
// enclosing other regions — even mutually crossing ones — is itself free of
// crossings and is removed: every enclosed region contributes both of its
// events to the wrapper's span.
func TestRemoveNonConflicting_WrapperDropped(t *testing.T) {
	// A=(0,9) wraps crossing B=(2,5) and C=(3,8).
	regs := buildRegions([]BasePair{{I: 0, J: 9}, {I: 2, J: 5}, {I: 3, J: 8}})
	require.Len(t, regs, 3)

	kept := removeNonConflicting(regs)
	assert.ElementsMatch(t, [][2]int{{2, 5}, {3, 8}}, spans(kept))
}

// TestRemoveNonConflicting_OnePass verifies that decisions are taken
// against the full event sequence: dropping the wrapper does not retrigger
// filtering of the crossing pair it enclosed.
func TestRemoveNonConflicting_OnePass(t *testing.T) {
	regs := buildRegions([]BasePair{{I: 0, J: 9}, {I: 2, J: 5}, {I: 3, J: 8}})

	first := removeNonConflicting(regs)
	second := removeNonConflicting(first)
	assert.Equal(t, spans(first), spans(second))
}

// TestRemoveNonConflicting_ScenarioA verifies Scenario A's filtering: the
// crossing pair survives, the isolated (5,6) region is removed.
func TestRemoveNonConflicting_ScenarioA(t *testing.T) {
	regs := buildRegions([]BasePair{{I: 0, J: 3}, {I: 1, J: 4}, {I: 5, J: 6}})
	require.Len(t, regs, 3)

	kept := removeNonConflicting(regs)
	assert.ElementsMatch(t, [][2]int{{0, 3}, {1, 4}}, spans(kept))
}

// TestRemoveNonConflicting_PartialOverlapSingleEvent verifies the counting
// rule directly: a region seeing exactly one event of a neighbor crosses it
// and must be kept.
func TestRemoveNonConflicting_PartialOverlapSingleEvent(t *testing.T) {
	// The middle region crosses both ends; the ends are disjoint.
	regs := buildRegions([]BasePair{{I: 0, J: 4}, {I: 2, J: 8}, {I: 6, J: 10}})
	require.Len(t, regs, 3)

	kept := removeNonConflicting(regs)
	assert.Len(t, kept, 3)
}
