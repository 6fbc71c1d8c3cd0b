// Package dijkstra_test provides examples demonstrating the maze solver.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/cellgrid"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/nodegraph"
)

// ExampleShortestPath solves a maze with a short route and a long detour.
// Complexity: O(E log V) on the sparse node graph.
func ExampleShortestPath() {
	// 1) Describe the maze; corridors between S, E and the two corners are
	//    folded into edges.
	g, err := cellgrid.FromRows([]string{
		"#######",
		"#S   E#",
		"# ### #",
		"#     #",
		"#######",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Build the node graph: 4 nodes, 4 edges.
	gr, err := nodegraph.Build(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Solve.
	p, err := dijkstra.ShortestPath(gr)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("nodes=%d edges=%d path=%v distance=%d\n", gr.Len(), gr.EdgeCount(), p.Cells, p.Distance)
	// Output: nodes=4 edges=4 path=[8 12] distance=4
}
