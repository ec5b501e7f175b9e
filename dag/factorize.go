package dag

import (
	"fmt"

	"github.com/pgmkit/pgmkit/dist"
)

// Factorizes reports whether the unconditioned joint distribution over the
// graph's variables decomposes as ∏_v p(x_v | parents(v)).
//
// For each variable v in the topological order 0..n-1 it derives two
// conditionals from the joint:
//
//	p(v | parents(v))  — marginalise down to {v} ∪ parents(v), then
//	                     condition on parents(v);
//	p(v | 0..v-1)      — marginalise down to {v} ∪ {0..v-1}, then condition
//	                     on the full predecessor set: the joint's own
//	                     chain-rule factor at v.
//
// Since parents(v) ⊆ {0..v-1}, the pair satisfies the nested-evidence shape
// of dist.EqualConditionals, which does the comparison. The first variable
// has empty parent and predecessor sets, so the pair degenerates to
// comparing p(x_0) against itself — conditioning on an empty set is a
// defined no-op, not a special case here.
//
// A failed equality yields (false, nil); errors are reserved for malformed
// inputs: a nil graph (ErrNilDAG), a distribution that is not a joint over
// exactly 0..n-1 (ErrNotJoint), or an invalid distribution surfacing from
// the dist primitives.
func Factorizes(joint *dist.Dist, g *DAG, opts ...dist.Option) (bool, error) {
	if g == nil {
		return false, fmt.Errorf("Factorizes: %w", ErrNilDAG)
	}
	if joint == nil {
		return false, fmt.Errorf("Factorizes: %w", ErrNotJoint)
	}
	all := make([]int, g.Len())
	for i := range all {
		all[i] = i
	}
	universe := dist.NewVarSet(all...)
	if !joint.Evidence().IsEmpty() || !joint.Query().Equal(universe) {
		return false, fmt.Errorf("Factorizes: got %s, want a joint over %v: %w", joint, universe, ErrNotJoint)
	}

	for v := 0; v < g.Len(); v++ {
		ps, err := g.Parents(v)
		if err != nil {
			return false, err
		}
		parents := dist.NewVarSet(ps...)
		family := parents.Union(dist.NewVarSet(v))

		// p(v | parents(v)): shrink the joint to the family, then condition.
		restricted, err := joint.Marginalize(universe.Diff(family))
		if err != nil {
			return false, fmt.Errorf("Factorizes: variable %d: %w", v, err)
		}
		byParents, err := restricted.Condition(parents)
		if err != nil {
			return false, fmt.Errorf("Factorizes: variable %d: %w", v, err)
		}

		// p(v | 0..v-1): the chain-rule factor over the full predecessor set.
		preds := dist.NewVarSet(all[:v]...)
		closure := preds.Union(dist.NewVarSet(v))
		prefix, err := joint.Marginalize(universe.Diff(closure))
		if err != nil {
			return false, fmt.Errorf("Factorizes: variable %d: %w", v, err)
		}
		byPreds, err := prefix.Condition(preds)
		if err != nil {
			return false, fmt.Errorf("Factorizes: variable %d: %w", v, err)
		}

		ok, err := dist.EqualConditionals(byParents, byPreds, opts...)
		if err != nil {
			return false, fmt.Errorf("Factorizes: variable %d: %w", v, err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
