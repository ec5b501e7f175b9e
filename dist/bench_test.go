package dist_test

import (
	"testing"

	"github.com/pgmkit/pgmkit/dist"
	"github.com/pgmkit/pgmkit/table"
)

// benchJoint builds a uniform joint over five ternary variables.
func benchJoint(b *testing.B) *dist.Dist {
	b.Helper()
	size := 3 * 3 * 3 * 3 * 3
	data := make([]float64, size)
	for i := range data {
		data[i] = 1 / float64(size)
	}
	tab, err := table.New([]int{3, 3, 3, 3, 3}, data)
	if err != nil {
		b.Fatal(err)
	}
	joint, err := dist.New(dist.NewVarSet(0, 1, 2, 3, 4), dist.NewVarSet(), tab)
	if err != nil {
		b.Fatal(err)
	}

	return joint
}

// BenchmarkMarginalize measures summing two variables out of a five
// variable joint.
func BenchmarkMarginalize(b *testing.B) {
	joint := benchJoint(b)
	m := dist.NewVarSet(1, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := joint.Marginalize(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCondition measures conditioning two variables of a five
// variable joint into evidence.
func BenchmarkCondition(b *testing.B) {
	joint := benchJoint(b)
	c := dist.NewVarSet(0, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := joint.Condition(c); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEqualConditionals measures the realigned elementwise comparison.
func BenchmarkEqualConditionals(b *testing.B) {
	joint := benchJoint(b)
	small, err := joint.Marginalize(dist.NewVarSet(3, 4))
	if err != nil {
		b.Fatal(err)
	}
	byE1, err := small.Condition(dist.NewVarSet(1))
	if err != nil {
		b.Fatal(err)
	}
	big, err := joint.Marginalize(dist.NewVarSet(4))
	if err != nil {
		b.Fatal(err)
	}
	byE2, err := big.Condition(dist.NewVarSet(1, 3))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dist.EqualConditionals(byE1, byE2); err != nil {
			b.Fatal(err)
		}
	}
}
