package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgmkit/pgmkit/dist"
)

// TestMarginalize_IndependentUniform sums variable 1 out of an independent
// uniform joint over sizes (2,3,4): the result is the outer product of the
// x0 and x2 marginals, uniform with shape (2,4).
func TestMarginalize_IndependentUniform(t *testing.T) {
	joint, err := dist.New(dist.NewVarSet(0, 1, 2), dist.NewVarSet(), uniformJoint(t, []int{2, 3, 4}))
	require.NoError(t, err)

	got, err := joint.Marginalize(dist.NewVarSet(1))
	require.NoError(t, err)
	assert.True(t, got.Query().Equal(dist.NewVarSet(0, 2)), "query shrinks to {0, 2}")
	assert.True(t, got.Evidence().IsEmpty())
	assert.Equal(t, []int{2, 4}, got.Table().Shape())
	for i, v := range got.Table().Data() {
		assert.InDelta(t, 1.0/8, v, 1e-12, "entry %d of the 2x4 marginal", i)
	}
}

// TestMarginalize_FullElimination verifies that summing out the entire
// query set is rejected with ErrEmptyResult.
func TestMarginalize_FullElimination(t *testing.T) {
	joint, err := dist.New(dist.NewVarSet(0, 1), dist.NewVarSet(), uniformJoint(t, []int{2, 2}))
	require.NoError(t, err)

	_, err = joint.Marginalize(dist.NewVarSet(0, 1))
	assert.ErrorIs(t, err, dist.ErrEmptyResult)
}

// TestMarginalize_NotSubset verifies that variables outside Q are rejected.
func TestMarginalize_NotSubset(t *testing.T) {
	joint, err := dist.New(dist.NewVarSet(0, 1), dist.NewVarSet(), uniformJoint(t, []int{2, 2}))
	require.NoError(t, err)

	_, err = joint.Marginalize(dist.NewVarSet(7))
	assert.ErrorIs(t, err, dist.ErrNotSubset)
}

// TestMarginalize_EmptySet verifies that an empty m yields an independent
// copy with the same sets and values.
func TestMarginalize_EmptySet(t *testing.T) {
	joint, err := dist.New(dist.NewVarSet(0, 1), dist.NewVarSet(), uniformJoint(t, []int{2, 2}))
	require.NoError(t, err)

	got, err := joint.Marginalize(dist.NewVarSet())
	require.NoError(t, err)
	assert.True(t, got.Query().Equal(joint.Query()))
	assert.Equal(t, joint.Table().Data(), got.Table().Data())
}

// TestMarginalize_KeepsEvidence verifies that marginalisation leaves the
// evidence set and the per-evidence normalisation intact.
func TestMarginalize_KeepsEvidence(t *testing.T) {
	// p(x0, x1 | x2): axes 0,1 query, axis 2 evidence; each evidence slice
	// sums to 1.
	cond, err := dist.New(dist.NewVarSet(0, 1), dist.NewVarSet(2), mustTable(t, []int{2, 2, 2}, []float64{
		0.1, 0.2, // x0=0, x1=0..1, x2=0..1 follows row-major
		0.2, 0.3,
		0.3, 0.1,
		0.4, 0.4,
	}))
	require.NoError(t, err)

	got, err := cond.Marginalize(dist.NewVarSet(1))
	require.NoError(t, err)
	assert.True(t, got.Query().Equal(dist.NewVarSet(0)))
	assert.True(t, got.Evidence().Equal(dist.NewVarSet(2)))
	// p(x0=0|x2=0) = 0.1+0.2 etc., still summing to 1 per slice.
	assert.InDeltaSlice(t, []float64{0.3, 0.5, 0.7, 0.5}, got.Table().Data(), 1e-12)
}

// TestMarginalize_NoInputMutation verifies that the source distribution's
// table is unchanged after the operation.
func TestMarginalize_NoInputMutation(t *testing.T) {
	joint, err := dist.New(dist.NewVarSet(0, 1), dist.NewVarSet(), mustTable(t, []int{2, 2}, []float64{
		0.1, 0.2,
		0.3, 0.4,
	}))
	require.NoError(t, err)

	_, err = joint.Marginalize(dist.NewVarSet(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, joint.Table().Data())
}
