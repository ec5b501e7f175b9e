package dist

import "fmt"

// Condition moves the variables of c from the query set into the evidence
// set: p(Q|E) becomes p(Q\c | E ∪ c). For every fixed setting of E ∪ c, the
// entries along the remaining query axes are rescaled to sum to 1.
//
// Preconditions: the receiver is valid, c ⊆ Q (ErrNotSubset), and c ≠ Q —
// the result's query set must stay non-empty (ErrEmptyResult). An empty c
// is legal and yields an independent copy of the receiver.
//
// The table keeps its rank and shape: no variable is removed, and since
// axis assignment is derived from sorted Q ∪ E — the same set before and
// after — every variable keeps its axis; only its query/evidence
// classification changes.
//
// Zero-mass evidence: when the remaining-query mass is exactly 0 for some
// setting of E ∪ c, that slice of the result is NaN rather than an error.
// The policy is deterministic across repeated calls; see the package doc.
// Complexity: O(Size · rank).
func (d *Dist) Condition(c VarSet) (*Dist, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if !c.SubsetOf(d.query) {
		return nil, fmt.Errorf("Condition: c = %v, Q = %v: %w", c, d.query, ErrNotSubset)
	}
	if c.Equal(d.query) {
		return nil, fmt.Errorf("Condition: c = Q = %v: %w", c, ErrEmptyResult)
	}
	if c.IsEmpty() {
		return &Dist{query: d.query, evidence: d.evidence, tab: d.tab.Clone(), eps: d.eps}, nil
	}

	keep := d.query.Diff(c)
	keepAxes, err := dimsFor(keep, d.query, d.evidence)
	if err != nil {
		return nil, err
	}
	normalized, err := d.tab.NormalizeAxes(keepAxes...)
	if err != nil {
		return nil, fmt.Errorf("Condition: %w", err)
	}

	return &Dist{query: keep, evidence: d.evidence.Union(c), tab: normalized, eps: d.eps}, nil
}
