package table

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// checkAxes validates an axis list against the receiver's rank: every axis
// must lie in 0..rank-1 and appear at most once. Returns a rank-sized
// membership mask. Complexity: O(rank + len(axes)).
func (t *Table) checkAxes(method string, axes []int) ([]bool, error) {
	mask := make([]bool, len(t.shape))
	for _, a := range axes {
		if a < 0 || a >= len(t.shape) {
			return nil, fmt.Errorf("Table.%s: axis %d, rank %d: %w", method, a, len(t.shape), ErrAxisOutOfRange)
		}
		if mask[a] {
			return nil, fmt.Errorf("Table.%s: axis %d duplicated: %w", method, a, ErrAxisOutOfRange)
		}
		mask[a] = true
	}

	return mask, nil
}

// SumAxes eliminates the given axes by summation, returning a new Table
// whose shape is the receiver's with those axes removed. Surviving axes keep
// their relative order. Summing no axes returns a clone; summing every axis
// returns a rank-0 table holding the total.
//
// Summation order is the fixed row-major element order, so results are
// deterministic up to floating-point rounding.
// Complexity: O(Size · rank) time, O(result size) memory.
func (t *Table) SumAxes(axes ...int) (*Table, error) {
	if t == nil {
		return nil, fmt.Errorf("Table.SumAxes: %w", ErrNilTable)
	}
	mask, err := t.checkAxes("SumAxes", axes)
	if err != nil {
		return nil, err
	}
	if len(axes) == 0 {
		return t.Clone(), nil
	}
	if len(axes) == len(t.shape) {
		// Full reduction: a rank-0 table holding the grand total.
		return &Table{shape: []int{}, strides: []int{}, data: []float64{floats.Sum(t.data)}}, nil
	}

	// Result shape = surviving axes in order; outStride[i] is the result's
	// stride for source axis i, 0 when axis i is summed away.
	outShape := make([]int, 0, len(t.shape)-len(axes))
	for i, n := range t.shape {
		if !mask[i] {
			outShape = append(outShape, n)
		}
	}
	out, err := Zeros(outShape)
	if err != nil {
		return nil, err
	}
	outStride := make([]int, len(t.shape))
	j := 0
	for i := range t.shape {
		if mask[i] {
			outStride[i] = 0
		} else {
			outStride[i] = out.strides[j]
			j++
		}
	}

	// Odometer walk over the source in row-major order, accumulating into
	// the projected result offset.
	idx := make([]int, len(t.shape))
	off := 0
	for flat := range t.data {
		out.data[off] += t.data[flat]

		for i := len(t.shape) - 1; i >= 0; i-- {
			idx[i]++
			off += outStride[i]
			if idx[i] < t.shape[i] {
				break
			}
			idx[i] = 0
			off -= t.shape[i] * outStride[i]
		}
	}

	return out, nil
}

// NormalizeAxes rescales the receiver so that, for every fixed setting of
// the remaining axes, the entries along the given axes sum to 1. The result
// has the receiver's shape; the receiver is not modified.
//
// Zero-mass policy: when the entries along the given axes sum to exactly 0
// for some fixed setting, every entry of that slice becomes NaN in the
// result (the 0/0 quotient is undefined; NaN keeps the shape and is
// deterministic across calls). NaN inputs propagate as NaN.
// Complexity: O(Size · rank) time, O(Size) memory.
func (t *Table) NormalizeAxes(axes ...int) (*Table, error) {
	if t == nil {
		return nil, fmt.Errorf("Table.NormalizeAxes: %w", ErrNilTable)
	}
	mask, err := t.checkAxes("NormalizeAxes", axes)
	if err != nil {
		return nil, err
	}

	out := t.Clone()
	if len(axes) == len(t.shape) {
		// Single slice: scale by the grand total, or NaN it out.
		total := floats.Sum(out.data)
		if total == 0 {
			for i := range out.data {
				out.data[i] = math.NaN()
			}

			return out, nil
		}
		floats.Scale(1/total, out.data)

		return out, nil
	}

	denom, err := t.SumAxes(axes...)
	if err != nil {
		return nil, err
	}

	// denomStride[i] maps source axis i onto the denominator's layout;
	// normalised axes contribute nothing to the denominator offset.
	denomStride := make([]int, len(t.shape))
	j := 0
	for i := range t.shape {
		if mask[i] {
			denomStride[i] = 0
		} else {
			denomStride[i] = denom.strides[j]
			j++
		}
	}

	idx := make([]int, len(t.shape))
	doff := 0
	for flat := range out.data {
		if d := denom.data[doff]; d == 0 {
			out.data[flat] = math.NaN()
		} else {
			out.data[flat] /= d
		}

		for i := len(t.shape) - 1; i >= 0; i-- {
			idx[i]++
			doff += denomStride[i]
			if idx[i] < t.shape[i] {
				break
			}
			idx[i] = 0
			doff -= t.shape[i] * denomStride[i]
		}
	}

	return out, nil
}
