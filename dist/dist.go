package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/pgmkit/pgmkit/table"
)

// Dist is a discrete distribution p(Q|E): a non-empty query set, an
// evidence set disjoint from it, and a table with one axis per variable of
// Q ∪ E under the sorted-ascending axis correspondence (see package doc).
//
// A Dist is immutable in effect: the constructor deep-copies the table, the
// accessors return copies, and every operation builds a fresh Dist. The
// tolerance chosen at construction travels with the value into derived
// distributions.
type Dist struct {
	query    VarSet
	evidence VarSet
	tab      *table.Table
	eps      float64
}

// New constructs and validates a distribution triple. The table is cloned,
// so the caller's array stays independent. Validation enforces, in order:
// non-empty Q (ErrEmptyQuery), Q ∩ E = ∅ (ErrOverlap), rank(tab) = |Q ∪ E|
// (ErrRankMismatch), non-negative entries (ErrNegative), and query-axis
// sums of 1 within tolerance for every evidence setting (ErrNotNormalized).
//
// NaN entries are tolerated: a slice that is entirely NaN is the defined
// result of conditioning on zero-probability evidence, and its sum check is
// skipped. Errors carry the offending values.
func New(query, evidence VarSet, tab *table.Table, opts ...Option) (*Dist, error) {
	if tab == nil {
		return nil, fmt.Errorf("New: %w", ErrNilTable)
	}
	o := gatherOptions(opts...)
	d := &Dist{query: query, evidence: evidence, tab: tab.Clone(), eps: o.eps}
	if err := d.validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Query returns the query variable set.
func (d *Dist) Query() VarSet { return d.query }

// Evidence returns the evidence variable set.
func (d *Dist) Evidence() VarSet { return d.evidence }

// Table returns a deep copy of the probability table.
func (d *Dist) Table() *table.Table { return d.tab.Clone() }

// String renders the triple as p(Q|E) with the table shape, for diagnostics.
func (d *Dist) String() string {
	if d.evidence.IsEmpty() {
		return fmt.Sprintf("p(%v) %v", d.query, d.tab.Shape())
	}

	return fmt.Sprintf("p(%v|%v) %v", d.query, d.evidence, d.tab.Shape())
}

// validate is the fail-fast gate run by the constructor and at the start of
// every public operation. It re-derives the axis correspondence from the
// current sets, never from cached state.
func (d *Dist) validate() error {
	if d == nil {
		return ErrNilDist
	}
	if d.query.IsEmpty() {
		return fmt.Errorf("validate: Q = %v: %w", d.query, ErrEmptyQuery)
	}
	if !d.query.DisjointFrom(d.evidence) {
		return fmt.Errorf("validate: Q = %v, E = %v: %w", d.query, d.evidence, ErrOverlap)
	}
	union := d.query.Union(d.evidence)
	if union.Len() != d.tab.Rank() {
		return fmt.Errorf("validate: |Q ∪ E| = %d, rank = %d: %w", union.Len(), d.tab.Rank(), ErrRankMismatch)
	}
	data := d.tab.Data()
	for i, v := range data {
		if v < 0 {
			return fmt.Errorf("validate: P[%d] = %g: %w", i, v, ErrNegative)
		}
	}

	// Per-evidence-setting mass: summing the query axes must leave an array
	// of ones (a scalar 1 when E is empty). NaN sums mark zero-probability
	// evidence slices and pass the gate.
	qAxes, err := dimsFor(d.query, d.query, d.evidence)
	if err != nil {
		return err
	}
	sums, err := d.tab.SumAxes(qAxes...)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	for i, s := range sums.Data() {
		if math.IsNaN(s) {
			continue
		}
		if !scalar.EqualWithinAbsOrRel(s, 1, d.eps, d.eps) {
			return fmt.Errorf("validate: sum over Q at evidence setting %d is %g: %w", i, s, ErrNotNormalized)
		}
	}

	return nil
}
