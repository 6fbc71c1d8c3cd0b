// Package mazegen generates solvable grid mazes for lvmaze.
//
// Backtrack carves a perfect maze (exactly one route between any two cells)
// with a randomized depth-first search, then optionally knocks out extra
// walls so the maze has cycles and the solver must choose between routes.
//
// Output is a validated *cellgrid.Grid with START on the top border and END
// on the bottom border, ready for nodegraph.Build or lvmaze.Solve.
//
// Errors:
//   - ErrTooSmall: rows or cols below 1.
//
// Determinism: equal options produce equal grids. Without WithSeed or
// WithRand a fixed seed is used.
package mazegen
