package dag

import "errors"

// Sentinel errors for dag operations, matched via errors.Is.
var (
	// ErrIncomplete indicates a parent map that does not cover exactly the
	// variables 0..n-1.
	ErrIncomplete = errors.New("dag: parent map must cover variables 0..n-1")

	// ErrBadParent indicates a parent outside 0..v-1 for its child v, or a
	// duplicated parent.
	ErrBadParent = errors.New("dag: parents must be distinct and precede their child")

	// ErrVariableRange indicates a variable identifier outside 0..n-1.
	ErrVariableRange = errors.New("dag: variable out of range")

	// ErrNotJoint indicates a distribution that is not an unconditioned
	// joint over exactly the graph's variables 0..n-1.
	ErrNotJoint = errors.New("dag: distribution must be a joint over the graph's variables")

	// ErrNilDAG indicates a nil *DAG receiver or argument.
	ErrNilDAG = errors.New("dag: nil graph")
)
