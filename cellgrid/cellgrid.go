package cellgrid

import "fmt"

// ASCII runes understood by FromRows.
const (
	RuneWall  = '#'
	RuneStart = 'S'
	RuneEnd   = 'E'
)

// New validates cells and returns an immutable Grid.
// The input slice is copied; later changes by the caller are not observed.
// Returns an error wrapping ErrMalformed if any invariant is violated.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, cells []Flag) (*Grid, error) {
	// 1) Dimensions must agree with the number of cells.
	if rows < 1 || cols < 1 || len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: rows=%d cols=%d cells=%d", ErrDimensions, rows, cols, len(cells))
	}

	// 2) Single pass: wall exclusivity and START/END cardinality.
	start, end := -1, -1
	starts, ends := 0, 0
	for i, f := range cells {
		if f.IsWall() {
			if f != Wall {
				return nil, fmt.Errorf("%w: cell %d is %s", ErrWallConflict, i, f)
			}
			continue
		}
		if f&Start != 0 {
			starts++
			start = i
		}
		if f&End != 0 {
			ends++
			end = i
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, starts)
	}
	if ends != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrEndCount, ends)
	}
	if start == end {
		return nil, fmt.Errorf("%w: cell %d", ErrStartIsEnd, start)
	}

	// 3) Deep copy to keep the grid immutable.
	cp := make([]Flag, len(cells))
	copy(cp, cells)

	return &Grid{rows: rows, cols: cols, cells: cp, start: start, end: end}, nil
}

// FromRows builds a Grid from ASCII art. Every row must have the same rune
// length. RuneWall marks a wall, RuneStart and RuneEnd mark the start and end
// cells, and any other rune is an open cell. Openings are derived from the
// orthogonal neighbours: a non-wall cell opens towards every in-bounds
// non-wall neighbour.
func FromRows(art []string) (*Grid, error) {
	if len(art) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrDimensions)
	}
	runes := make([][]rune, len(art))
	for r, line := range art {
		runes[r] = []rune(line)
		if len(runes[r]) != len(runes[0]) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrDimensions, r, len(runes[r]), len(runes[0]))
		}
	}
	rows, cols := len(runes), len(runes[0])
	open := func(r, c int) bool {
		return r >= 0 && r < rows && c >= 0 && c < cols && runes[r][c] != RuneWall
	}

	cells := make([]Flag, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var f Flag
			switch runes[r][c] {
			case RuneWall:
				cells = append(cells, Wall)
				continue
			case RuneStart:
				f |= Start
			case RuneEnd:
				f |= End
			}
			if open(r-1, c) {
				f |= Up
			}
			if open(r+1, c) {
				f |= Down
			}
			if open(r, c-1) {
				f |= Left
			}
			if open(r, c+1) {
				f |= Right
			}
			cells = append(cells, f)
		}
	}

	return New(rows, cols, cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.cells) }

// At returns the flags of the cell at row-major index i.
func (g *Grid) At(i int) Flag { return g.cells[i] }

// AtRC returns the flags of the cell at (r, c).
func (g *Grid) AtRC(r, c int) Flag { return g.cells[g.Index(r, c)] }

// Index maps (r, c) to a row-major index: r*cols + c.
func (g *Grid) Index(r, c int) int { return r*g.cols + c }

// Coordinate converts a row-major index back to (r, c).
func (g *Grid) Coordinate(i int) (r, c int) { return i / g.cols, i % g.cols }

// InBounds reports whether (r, c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Start returns the grid index of the START cell.
func (g *Grid) Start() int { return g.start }

// End returns the grid index of the END cell.
func (g *Grid) End() int { return g.end }

// Cells returns a copy of the row-major cell flags.
func (g *Grid) Cells() []Flag {
	cp := make([]Flag, len(g.cells))
	copy(cp, g.cells)

	return cp
}

// Traversable counts the non-WALL cells.
// Complexity: O(R×C).
func (g *Grid) Traversable() int {
	n := 0
	for _, f := range g.cells {
		if !f.IsWall() {
			n++
		}
	}

	return n
}
