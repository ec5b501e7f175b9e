package dist

import (
	"fmt"
	"sort"
)

// Axis correspondence: axes of a distribution's table are assigned by
// sorting Q ∪ E ascending — the i-th smallest variable identifier owns
// axis i. The correspondence is recomputed from the sets on every call and
// never cached, so reclassifying a variable from Q to E cannot leave a
// stale mapping behind.

// axisMap returns the variable→axis correspondence for the universe Q ∪ E.
// Complexity: O(|Q ∪ E|).
func axisMap(q, e VarSet) map[int]int {
	union := q.Union(e)
	m := make(map[int]int, union.Len())
	for axis, id := range union.ids {
		m[id] = axis
	}

	return m
}

// dimsFor resolves the variables of m to their axis indices under the
// Q ∪ E correspondence, listed in ascending order of the variables
// themselves. A variable outside Q ∪ E yields ErrUnknownVariable.
// Complexity: O(|m| log |Q ∪ E|).
func dimsFor(m, q, e VarSet) ([]int, error) {
	union := q.Union(e)
	axes := make([]int, 0, m.Len())
	for _, id := range m.ids {
		axis, ok := indexOf(union.ids, id)
		if !ok {
			return nil, fmt.Errorf("dimsFor: variable %d not in %v: %w", id, union, ErrUnknownVariable)
		}
		axes = append(axes, axis)
	}

	return axes, nil
}

// indexOf locates id in a sorted slice by binary search.
func indexOf(sorted []int, id int) (int, bool) {
	i := sort.SearchInts(sorted, id)

	return i, i < len(sorted) && sorted[i] == id
}
