package dist

import "fmt"

// Marginalize eliminates the variables of m from the query set by summing
// them out of the table: p(Q|E) becomes p(Q\m | E).
//
// Preconditions: the receiver is valid, m ⊆ Q (ErrNotSubset), and m ≠ Q —
// the result's query set must stay non-empty (ErrEmptyResult). An empty m
// is legal and yields an independent copy of the receiver.
//
// The axes to sum are resolved against the receiver's Q ∪ E; the surviving
// axes keep their relative order, since removing variables from the sorted
// union never reorders the rest. The receiver's table is not modified.
// Complexity: O(Size · rank).
func (d *Dist) Marginalize(m VarSet) (*Dist, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if !m.SubsetOf(d.query) {
		return nil, fmt.Errorf("Marginalize: m = %v, Q = %v: %w", m, d.query, ErrNotSubset)
	}
	if m.Equal(d.query) {
		return nil, fmt.Errorf("Marginalize: m = Q = %v: %w", m, ErrEmptyResult)
	}
	if m.IsEmpty() {
		return &Dist{query: d.query, evidence: d.evidence, tab: d.tab.Clone(), eps: d.eps}, nil
	}

	axes, err := dimsFor(m, d.query, d.evidence)
	if err != nil {
		return nil, err
	}
	reduced, err := d.tab.SumAxes(axes...)
	if err != nil {
		return nil, fmt.Errorf("Marginalize: %w", err)
	}

	return &Dist{query: d.query.Diff(m), evidence: d.evidence, tab: reduced, eps: d.eps}, nil
}
