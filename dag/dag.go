package dag

import (
	"fmt"
	"sort"
)

// DAG is an immutable directed acyclic graph over the variables 0..n-1,
// stored as each variable's sorted parent list. The identifier order is the
// topological order: parents precede children.
type DAG struct {
	parents [][]int // parents[v] sorted ascending; every entry < v
}

// New builds a DAG from a parent map. The map's keys must be exactly the
// variables 0..len(parents)-1 (ErrIncomplete); each variable's parents must
// be distinct and strictly smaller than the variable itself (ErrBadParent).
// The input map and its slices are copied, never retained.
func New(parents map[int][]int) (*DAG, error) {
	n := len(parents)
	g := &DAG{parents: make([][]int, n)}
	for v := 0; v < n; v++ {
		ps, ok := parents[v]
		if !ok {
			return nil, fmt.Errorf("New: variable %d missing from parent map of size %d: %w", v, n, ErrIncomplete)
		}
		sorted := make([]int, len(ps))
		copy(sorted, ps)
		sort.Ints(sorted)
		for i, p := range sorted {
			if p < 0 || p >= v {
				return nil, fmt.Errorf("New: variable %d has parent %d: %w", v, p, ErrBadParent)
			}
			if i > 0 && sorted[i-1] == p {
				return nil, fmt.Errorf("New: variable %d repeats parent %d: %w", v, p, ErrBadParent)
			}
		}
		g.parents[v] = sorted
	}

	return g, nil
}

// Len returns the number of variables.
func (g *DAG) Len() int { return len(g.parents) }

// Parents returns a copy of v's parent list, sorted ascending.
func (g *DAG) Parents(v int) ([]int, error) {
	if v < 0 || v >= len(g.parents) {
		return nil, fmt.Errorf("Parents: variable %d, n = %d: %w", v, len(g.parents), ErrVariableRange)
	}
	out := make([]int, len(g.parents[v]))
	copy(out, g.parents[v])

	return out, nil
}

// Predecessors returns the full preceding variable set 0..v-1 of v.
func (g *DAG) Predecessors(v int) ([]int, error) {
	if v < 0 || v >= len(g.parents) {
		return nil, fmt.Errorf("Predecessors: variable %d, n = %d: %w", v, len(g.parents), ErrVariableRange)
	}
	out := make([]int, v)
	for i := range out {
		out[i] = i
	}

	return out, nil
}
