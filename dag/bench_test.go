package dag_test

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pgmkit/pgmkit/dag"
	"github.com/pgmkit/pgmkit/dist"
	"github.com/pgmkit/pgmkit/table"
)

// BenchmarkFactorizes measures the full five-variable scenario check.
func BenchmarkFactorizes(b *testing.B) {
	parents := map[int][]int{0: {}, 1: {0}, 2: {1}, 3: {1, 2}, 4: {0, 2}}
	g, err := dag.New(parents)
	if err != nil {
		b.Fatal(err)
	}

	// A generic strictly positive joint; the verdict does not matter here.
	u := distuv.Uniform{Min: 0.05, Max: 1, Src: rand.NewSource(1)}
	data := make([]float64, 32)
	total := 0.0
	for i := range data {
		data[i] = u.Rand()
		total += data[i]
	}
	for i := range data {
		data[i] /= total
	}
	tab, err := table.New([]int{2, 2, 2, 2, 2}, data)
	if err != nil {
		b.Fatal(err)
	}
	joint, err := dist.New(dist.NewVarSet(0, 1, 2, 3, 4), dist.NewVarSet(), tab)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dag.Factorizes(joint, g); err != nil {
			b.Fatal(err)
		}
	}
}
