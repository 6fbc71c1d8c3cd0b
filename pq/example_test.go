// Package pq_test shows the insert / decrease-key / extract cycle.
package pq_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/pq"
)

// ExampleQueue_DecreaseKey tightens a queued entry so it overtakes the others.
func ExampleQueue_DecreaseKey() {
	q := pq.New[string](3)
	q.Insert(4, "B")
	q.Insert(6, "C")
	far := q.Insert(9, "D")

	// A shorter route to D was found.
	if err := q.DecreaseKey(far, 3); err != nil {
		fmt.Println("error:", err)
		return
	}

	for q.Len() > 0 {
		k, v, _ := q.ExtractMin()
		fmt.Printf("%s=%d ", v, k)
	}
	fmt.Println()
	// Output: D=3 B=4 C=6
}
