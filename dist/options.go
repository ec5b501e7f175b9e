// Package dist: functional configuration for numeric tolerance.
//
// Design goals (shared across pgmkit):
//   - Deterministic behavior: no global state, defaults are constants.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); user-triggered conditions return sentinel errors instead.
//   - Options fields are unexported; public APIs consume ...Option.
package dist

import "math"

// DefaultEpsilon is the non-negative tolerance used by the validator's
// sum-to-one check and by EqualConditionals' elementwise comparison. It is
// applied both absolutely and relatively (whichever admits the pair).
const DefaultEpsilon = 1e-9

// options carries resolved settings; fields are internal.
type options struct {
	eps float64 // tolerance for sum-to-one and elementwise equality
}

// Option mutates resolved options. Constructed only via WithX helpers.
type Option func(*options)

// WithEpsilon overrides the numeric tolerance. Panics if eps is negative or
// NaN, since a nonsensical tolerance is a programmer error, not a runtime
// condition.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("dist: WithEpsilon requires a non-negative tolerance")
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions resolves defaults then applies overrides in order.
func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
