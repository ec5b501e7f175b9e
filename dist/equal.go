package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// EqualConditionals reports whether p(Q|E1) and p(Q|E2) are the same
// conditional distribution, for two valid distributions sharing the query
// set Q with nested evidence sets E1 ⊆ E2. Conceptually, a's table is
// broadcast up to b's shape — replicated identically across every setting
// of the variables in E2 \ E1, which it does not depend on — and the two
// are compared elementwise within tolerance.
//
// Positions are matched by variable identity, never by raw axis position:
// a's axes follow sorted Q ∪ E1 while b's follow sorted Q ∪ E2, and the two
// orders diverge whenever E2 \ E1 interleaves. The walk below realigns axes
// through each side's own variable→axis correspondence, so no broadcast
// array is ever materialised.
//
// NaN entries in matching positions compare as equal (zero-mass evidence
// slices are NaN on both sides when the distributions agree); a NaN facing
// a number is a mismatch. A mismatch is a false result, not an error —
// errors are reserved for malformed inputs: ErrQueryMismatch,
// ErrEvidenceNotNested, ErrCardinalityMismatch, or an invalid distribution.
// Complexity: O(Size(b) · rank(b)).
func EqualConditionals(a, b *Dist, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("EqualConditionals: %w", ErrNilDist)
	}
	if err := a.validate(); err != nil {
		return false, err
	}
	if err := b.validate(); err != nil {
		return false, err
	}
	if !a.query.Equal(b.query) {
		return false, fmt.Errorf("EqualConditionals: %v vs %v: %w", a.query, b.query, ErrQueryMismatch)
	}
	if !a.evidence.SubsetOf(b.evidence) {
		return false, fmt.Errorf("EqualConditionals: E1 = %v, E2 = %v: %w", a.evidence, b.evidence, ErrEvidenceNotNested)
	}
	o := gatherOptions(opts...)

	unionA := a.query.Union(a.evidence)
	unionB := b.query.Union(b.evidence)
	shapeA, shapeB := a.tab.Shape(), b.tab.Shape()
	stridesA := a.tab.Strides()

	// proj[k] is a's stride for the variable on b's axis k, or 0 when that
	// variable lives only in E2 \ E1 (a's values do not depend on it).
	proj := make([]int, unionB.Len())
	for k, id := range unionB.ids {
		axisA, ok := indexOf(unionA.ids, id)
		if !ok {
			continue
		}
		if shapeA[axisA] != shapeB[k] {
			return false, fmt.Errorf("EqualConditionals: variable %d has %d states vs %d: %w",
				id, shapeA[axisA], shapeB[k], ErrCardinalityMismatch)
		}
		proj[k] = stridesA[axisA]
	}

	dataA, dataB := a.tab.Data(), b.tab.Data()
	idx := make([]int, len(shapeB))
	offA := 0
	for flat := range dataB {
		va, vb := dataA[offA], dataB[flat]
		switch {
		case math.IsNaN(va) && math.IsNaN(vb):
			// Matching zero-mass slices agree.
		case math.IsNaN(va) || math.IsNaN(vb):
			return false, nil
		case !scalar.EqualWithinAbsOrRel(va, vb, o.eps, o.eps):
			return false, nil
		}

		for k := len(shapeB) - 1; k >= 0; k-- {
			idx[k]++
			offA += proj[k]
			if idx[k] < shapeB[k] {
				break
			}
			idx[k] = 0
			offA -= shapeB[k] * proj[k]
		}
	}

	return true, nil
}
