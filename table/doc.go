// Package table provides dense N-dimensional float64 arrays with row-major
// storage, the substrate beneath pgmkit's probability distributions.
//
// The table package provides:
//
//   - Table, a rank-N array backed by a flat slice with explicit strides
//     (offset = Σ idx[i]·stride[i]), cache-friendly and allocation-cheap.
//   - Safe accessors: At/Set return errors instead of panicking.
//   - SumAxes for eliminating axes by summation, and NormalizeAxes for
//     per-slice normalisation along a set of axes.
//   - Clone for deep copies; no operation ever mutates its receiver's data
//     beyond Set on the table it was called on.
//
// Numeric policy: entries may be any float64, including NaN — callers such
// as the dist package rely on NaN as the defined result of normalising a
// slice whose total mass is zero. Loop orders are fixed, so results are
// deterministic up to floating-point rounding.
//
// Tables are best for small dense arrays where O(∏ shape) memory is
// acceptable; correctness and precise index bookkeeping take priority over
// large-scale performance.
package table
