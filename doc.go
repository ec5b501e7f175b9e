// Package pgmkit is a small toolkit for discrete probability distributions
// represented as dense multi-dimensional tables, and for checking whether a
// joint distribution factorises according to a directed acyclic graph.
//
// 🚀 What is pgmkit?
//
//	A compact, deterministic library that brings together:
//		• table/ — dense N-dimensional float64 arrays: axis sums, per-slice
//		  normalisation, deep clones
//		• dist/  — the (Q, E, P) distribution triple: validation,
//		  marginalisation, conditioning and conditional-equality testing
//		• dag/   — parent-map DAGs and the factorisation check built from
//		  the dist primitives
//
// ✨ Why choose pgmkit?
//
//   - Precise semantics – every operation documents its invariants, edge
//     cases and numeric tolerance policy
//   - Immutable values – operations return fresh tables; callers' arrays
//     are never mutated
//   - Sentinel errors – every failure is a package-prefixed sentinel
//     matched with errors.Is, never a panic
//
// Quick example: does p(x0..x4) factorise as
//
//	p(x0)·p(x1|x0)·p(x2|x1)·p(x3|x1,x2)·p(x4|x0,x2)?
//
//	joint, _ := dist.New(dist.NewVarSet(0, 1, 2, 3, 4), dist.VarSet{}, tab)
//	g, _ := dag.New(map[int][]int{0: {}, 1: {0}, 2: {1}, 3: {1, 2}, 4: {0, 2}})
//	ok, _ := dag.Factorizes(joint, g)
//
// Correctness over speed: pgmkit targets exact bookkeeping on small tables,
// not large-scale inference.
//
//	go get github.com/pgmkit/pgmkit
package pgmkit
