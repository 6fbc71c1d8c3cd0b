// SPDX-License-Identifier: MIT
// Package: lvmaze/mazegen
//
// backtrack.go — recursive-backtracker (randomized DFS) maze generation.
//
// Canonical model:
//   • rows×cols logical cells rendered on a (2·rows+1)×(2·cols+1) wall grid.
//     Logical cell (r,c) sits at (2r+1, 2c+1); the cell between two logical
//     neighbours is a wall until carved.
//   • START opens the top border above (0,0); END opens the bottom border
//     below (rows-1, cols-1).
//
// Complexity:
//   • Time: O(rows·cols). Space: O(rows·cols) for the canvas and the stack.

package mazegen

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/cellgrid"
)

type pos struct{ r, c int }

// Backtrack carves a perfect maze with an explicit-stack randomized DFS and
// returns it as a cellgrid.Grid. With WithLoops the maze gains cycles.
func Backtrack(rows, cols int, opts ...Option) (*cellgrid.Grid, error) {
	// 1) Validate parameters.
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrTooSmall, rows, cols)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Start from a solid canvas.
	h, w := 2*rows+1, 2*cols+1
	canvas := make([][]byte, h)
	for y := range canvas {
		canvas[y] = make([]byte, w)
		for x := range canvas[y] {
			canvas[y][x] = cellgrid.RuneWall
		}
	}
	open := func(p pos) { canvas[2*p.r+1][2*p.c+1] = ' ' }
	carve := func(a, b pos) { canvas[a.r+b.r+1][a.c+b.c+1] = ' ' }

	// 3) Randomized DFS with an explicit stack.
	visited := make([]bool, rows*cols)
	stack := []pos{{0, 0}}
	visited[0] = true
	open(pos{0, 0})
	candidates := make([]pos, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range [...]pos{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			n := pos{cur.r + d.r, cur.c + d.c}
			if n.r < 0 || n.r >= rows || n.c < 0 || n.c >= cols || visited[n.r*cols+n.c] {
				continue
			}
			candidates = append(candidates, n)
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := candidates[cfg.rng.Intn(len(candidates))]
		visited[next.r*cols+next.c] = true
		open(next)
		carve(cur, next)
		stack = append(stack, next)
	}

	// 4) Optionally knock out interior walls to create loops.
	if cfg.loops > 0 {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols && cfg.rng.Float64() < cfg.loops {
					carve(pos{r, c}, pos{r, c + 1})
				}
				if r+1 < rows && cfg.rng.Float64() < cfg.loops {
					carve(pos{r, c}, pos{r + 1, c})
				}
			}
		}
	}

	// 5) Entry and exit on the outer border.
	canvas[0][1] = cellgrid.RuneStart
	canvas[h-1][w-2] = cellgrid.RuneEnd

	art := make([]string, h)
	for y := range canvas {
		art[y] = string(canvas[y])
	}

	return cellgrid.FromRows(art)
}
