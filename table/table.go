package table

import (
	"fmt"
	"strings"
)

// Table is a dense rank-N array of float64 values in row-major order.
// shape holds the per-axis sizes, strides the row-major strides
// (strides[i] = ∏ shape[i+1:]), and data the ∏ shape elements.
//
// A rank-0 Table is legal and holds exactly one element; it arises from
// summing every axis of a joint distribution. The public New constructor
// accepts it so that reductions round-trip through the same API.
type Table struct {
	shape   []int     // per-axis sizes, all > 0
	strides []int     // row-major strides, len == len(shape)
	data    []float64 // flat backing storage, length == ∏ shape
}

var _ fmt.Stringer = (*Table)(nil)

// rowMajorStrides computes strides for a validated shape.
// Complexity: O(rank).
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	return strides
}

// New creates a Table with the given shape, copying data into private
// backing storage. Every dimension size must be positive and len(data)
// must equal the product of the sizes (1 for an empty shape).
// Complexity: O(∏ shape) time and memory.
func New(shape []int, data []float64) (*Table, error) {
	size := 1
	for i, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("New: shape[%d] = %d: %w", i, n, ErrBadShape)
		}
		size *= n
	}
	if len(data) != size {
		return nil, fmt.Errorf("New: len(data) = %d, want %d: %w", len(data), size, ErrDataLength)
	}

	// Private copies keep the caller's slices independent of ours.
	s := make([]int, len(shape))
	copy(s, shape)
	d := make([]float64, len(data))
	copy(d, data)

	return &Table{shape: s, strides: rowMajorStrides(s), data: d}, nil
}

// Zeros creates a zero-filled Table with the given shape.
// Complexity: O(∏ shape) time and memory.
func Zeros(shape []int) (*Table, error) {
	size := 1
	for i, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("Zeros: shape[%d] = %d: %w", i, n, ErrBadShape)
		}
		size *= n
	}
	s := make([]int, len(shape))
	copy(s, shape)

	return &Table{shape: s, strides: rowMajorStrides(s), data: make([]float64, size)}, nil
}

// Rank returns the number of axes.
func (t *Table) Rank() int { return len(t.shape) }

// Size returns the total number of elements.
func (t *Table) Size() int { return len(t.data) }

// Shape returns a copy of the per-axis sizes.
func (t *Table) Shape() []int {
	s := make([]int, len(t.shape))
	copy(s, t.shape)

	return s
}

// Strides returns a copy of the row-major strides, one per axis.
func (t *Table) Strides() []int {
	s := make([]int, len(t.strides))
	copy(s, t.strides)

	return s
}

// Data returns a copy of the backing storage in row-major order.
// Complexity: O(Size).
func (t *Table) Data() []float64 {
	d := make([]float64, len(t.data))
	copy(d, t.data)

	return d
}

// offsetOf computes the flat offset for a full multi-index, or returns
// ErrOutOfRange with the offending coordinate.
// Complexity: O(rank).
func (t *Table) offsetOf(method string, idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("Table.%s: got %d coordinates, want %d: %w", method, len(idx), len(t.shape), ErrOutOfRange)
	}
	off := 0
	for i, c := range idx {
		if c < 0 || c >= t.shape[i] {
			return 0, fmt.Errorf("Table.%s: idx[%d] = %d, axis size %d: %w", method, i, c, t.shape[i], ErrOutOfRange)
		}
		off += c * t.strides[i]
	}

	return off, nil
}

// At retrieves the element at the given multi-index.
// Complexity: O(rank).
func (t *Table) At(idx ...int) (float64, error) {
	off, err := t.offsetOf("At", idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set assigns v at the given multi-index.
// Complexity: O(rank).
func (t *Table) Set(v float64, idx ...int) error {
	off, err := t.offsetOf("Set", idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(Size) time and memory.
func (t *Table) Clone() *Table {
	d := make([]float64, len(t.data))
	copy(d, t.data)
	s := make([]int, len(t.shape))
	copy(s, t.shape)

	return &Table{shape: s, strides: rowMajorStrides(s), data: d}
}

// String renders the shape and the row-major data, for debugging.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString("Table")
	fmt.Fprintf(&b, "%v", t.shape)
	b.WriteString("{")
	for i, v := range t.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("}")

	return b.String()
}
