package table

import "errors"

// Sentinel errors for table operations. All public entry points return these
// (optionally wrapped with fmt.Errorf("ctx: %w", ...)); tests match them via
// errors.Is. No operation panics on user-triggered conditions.
var (
	// ErrBadShape indicates a shape with a non-positive dimension size.
	ErrBadShape = errors.New("table: shape dimensions must be > 0")

	// ErrDataLength indicates backing data whose length does not equal the
	// product of the shape's dimension sizes.
	ErrDataLength = errors.New("table: data length does not match shape")

	// ErrOutOfRange indicates an element index outside the table's bounds,
	// or an index with the wrong number of coordinates.
	ErrOutOfRange = errors.New("table: index out of range")

	// ErrAxisOutOfRange indicates a referenced axis outside 0..Rank()-1,
	// or a duplicated axis in an axis list.
	ErrAxisOutOfRange = errors.New("table: axis out of range")

	// ErrNilTable indicates a nil *Table receiver or argument.
	ErrNilTable = errors.New("table: nil table")
)
