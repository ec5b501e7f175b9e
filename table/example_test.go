package table_test

import (
	"fmt"

	"github.com/pgmkit/pgmkit/table"
)

// ExampleTable_SumAxes demonstrates eliminating one axis of a joint table
// by summation: the 2x3 table collapses to its row sums.
func ExampleTable_SumAxes() {
	tab, _ := table.New([]int{2, 3}, []float64{
		0.1, 0.2, 0.1,
		0.2, 0.3, 0.1,
	})

	rows, _ := tab.SumAxes(1)
	fmt.Println(rows)
	// Output:
	// Table[2]{0.4, 0.6}
}

// ExampleTable_NormalizeAxes demonstrates per-column normalisation: after
// normalising along axis 0, every column of the result sums to 1.
func ExampleTable_NormalizeAxes() {
	tab, _ := table.New([]int{3, 3}, []float64{
		0.1, 0.00, 0.00,
		0.2, 0.35, 0.20,
		0.1, 0.00, 0.05,
	})

	cond, _ := tab.NormalizeAxes(0)
	fmt.Println(cond)
	// Output:
	// Table[3 3]{0.25, 0, 0, 0.5, 1, 0.8, 0.25, 0, 0.2}
}
