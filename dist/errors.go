package dist

import "errors"

// Sentinel errors for dist operations, grouped by kind. Validation
// sentinels gate every public operation; argument sentinels report misuse of
// a variable-subset parameter; lookup sentinels report references outside
// the distribution's variable universe. All are matched via errors.Is and
// may arrive wrapped with the offending values. No operation panics on
// user-triggered conditions.
var (
	// ErrEmptyQuery indicates a distribution whose query set is empty.
	ErrEmptyQuery = errors.New("dist: query set must be non-empty")

	// ErrOverlap indicates query and evidence sets sharing a variable.
	ErrOverlap = errors.New("dist: query and evidence sets must be disjoint")

	// ErrRankMismatch indicates a table whose rank differs from |Q ∪ E|.
	ErrRankMismatch = errors.New("dist: table rank does not match variable count")

	// ErrNegative indicates a negative probability entry.
	ErrNegative = errors.New("dist: probabilities must be non-negative")

	// ErrNotNormalized indicates query-axis sums that are not 1 within
	// tolerance for some evidence setting.
	ErrNotNormalized = errors.New("dist: probabilities do not sum to 1 over the query variables")

	// ErrNotSubset indicates a variable-subset argument not contained in
	// the query set.
	ErrNotSubset = errors.New("dist: variables are not a subset of the query set")

	// ErrEmptyResult indicates an operation that would leave the query set
	// empty (marginalising or conditioning away every query variable).
	ErrEmptyResult = errors.New("dist: operation would empty the query set")

	// ErrQueryMismatch indicates two distributions with different query
	// sets where identical ones are required.
	ErrQueryMismatch = errors.New("dist: query sets differ")

	// ErrEvidenceNotNested indicates evidence sets that violate the
	// required E1 ⊆ E2 relation.
	ErrEvidenceNotNested = errors.New("dist: evidence sets are not nested")

	// ErrCardinalityMismatch indicates two distributions disagreeing on a
	// shared variable's dimension size.
	ErrCardinalityMismatch = errors.New("dist: variable cardinalities differ")

	// ErrUnknownVariable indicates a variable absent from Q ∪ E when
	// resolving dimensions.
	ErrUnknownVariable = errors.New("dist: variable not present in the distribution")

	// ErrNilDist indicates a nil *Dist receiver or argument.
	ErrNilDist = errors.New("dist: nil distribution")

	// ErrNilTable indicates a nil table passed to a constructor.
	ErrNilTable = errors.New("dist: nil table")
)
