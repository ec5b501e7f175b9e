// Package dist implements discrete probability distributions as
// (Q, E, P) triples: a query variable set Q, an evidence variable set E
// disjoint from Q, and a dense table P with one axis per variable of Q ∪ E.
//
// The dist package provides:
//
//   - VarSet, an immutable sorted set of integer variable identifiers.
//   - Dist, the distribution triple, validated on construction: Q non-empty,
//     Q ∩ E = ∅, rank(P) = |Q ∪ E|, entries non-negative, and the entries
//     along the query axes summing to 1 for every fixed evidence setting.
//   - Marginalize — eliminate query variables by summation.
//   - Condition — move query variables into the evidence set by
//     per-evidence-slice normalisation.
//   - EqualConditionals — test p(Q|E1) = p(Q|E2) for nested evidence sets,
//     aligning axes by variable identity.
//
// Axis correspondence: axes are assigned by sorting Q ∪ E ascending — the
// i-th smallest identifier owns axis i of P. The correspondence is derived
// from the sets on demand and never stored, so it can never go stale when a
// variable moves from Q to E.
//
// Zero-mass evidence policy: conditioning on an evidence setting whose total
// probability is 0 is not an error. The affected slice of the result is NaN,
// deterministically, and EqualConditionals treats NaN entries in matching
// positions as equal (unlike IEEE comparison) so downstream checks remain
// well-defined.
//
// Every operation validates its inputs first and returns package-prefixed
// sentinel errors matched with errors.Is; a merely-false comparison is a
// false result, never an error. Operations return new values — the caller's
// tables are never mutated.
package dist
