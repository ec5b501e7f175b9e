// Package dag represents directed acyclic graphs over the variables
// 0..n-1 as parent maps, and checks whether a joint distribution
// factorises according to such a graph.
//
// The topological order is the identifier order itself: every parent must
// carry a smaller identifier than its child, which New validates up front —
// the order is given, not discovered, so no traversal machinery is needed
// beyond the parent-lookup table.
//
// Factorizes encodes the identity
//
//	p(x0, …, x_{n-1}) = ∏_v p(x_v | parents(v))
//
// by checking, for each variable in order, that conditioning on its graph
// parents is equivalent to conditioning on its full predecessor set
// {0, …, v-1} — the local Markov property. The check is built entirely from
// the dist package's Marginalize, Condition and EqualConditionals.
package dag
