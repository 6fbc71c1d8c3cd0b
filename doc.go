// Package lvmaze solves grid mazes by reducing them to a sparse graph of
// decision points and running Dijkstra over it.
//
// 🚀 What's inside?
//
//	A pure-Go, zero-state toolkit that brings together:
//		• cellgrid/  — the immutable per-cell bitmask grid (UP, DOWN, LEFT,
//		               RIGHT, START, END, WALL) and its validation
//		• nodegraph/ — classification of cells into start, end, junction,
//		               turn and dead-end nodes, plus row/column edge scanning
//		• pq/        — a min-priority queue with stable handles and decrease-key
//		• dijkstra/  — the shortest-path solver over the node graph
//		• mazegen/   — a seeded recursive-backtracker maze generator
//
// Straight corridor cells never become nodes: their length is folded into
// the distance of the edge that crosses them, which keeps the solved graph
// small.
//
// Quick example:
//
//	g, _ := cellgrid.FromRows([]string{
//	    "#######",
//	    "#S   E#",
//	    "# ### #",
//	    "#     #",
//	    "#######",
//	})
//	sol, err := lvmaze.Solve(g)
//	// sol.Path == [8 12], sol.Distance == 4
//
// Errors are *SolveError values whose Kind distinguishes malformed input,
// an unreachable end and an empty graph; errors.Is works with
// ErrMalformedGrid, ErrUnreachableEnd and ErrEmptyGraph.
//
// Every call owns its grid copy, graph and queue. Nothing is shared between
// solves, so a host may run as many as it likes in parallel.
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
