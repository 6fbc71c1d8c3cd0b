package lvmaze_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvmaze"
	"github.com/katalvlaran/lvmaze/cellgrid"
)

// ExampleSolve solves a small loop and draws the chosen path.
func ExampleSolve() {
	g, err := cellgrid.FromRows([]string{
		"#######",
		"#S   E#",
		"# ### #",
		"#     #",
		"#######",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	sol, err := lvmaze.Solve(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("path=%v distance=%d nodes=%d edges=%d\n",
		sol.Path, sol.Distance, sol.Stats.Nodes, sol.Stats.Edges)
	_ = sol.Graph().Render(os.Stdout, sol.Path)
	// Output:
	// path=[8 12] distance=4 nodes=4 edges=4
	// #######
	// #S...E#
	// # ### #
	// #O   O#
	// #######
}

// ExampleSolve_unreachable shows how callers distinguish failure kinds.
func ExampleSolve_unreachable() {
	g, _ := cellgrid.FromRows([]string{
		"#####",
		"#S#E#",
		"#####",
	})

	_, err := lvmaze.Solve(g)
	var se *lvmaze.SolveError
	if errors.As(err, &se) {
		fmt.Println(se.Kind, errors.Is(err, lvmaze.ErrUnreachableEnd))
	}
	// Output:
	// unreachable end true
}
