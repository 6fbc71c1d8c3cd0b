package nodegraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrBadPath indicates a path whose consecutive cells do not share a row or
// column, or that leaves the grid.
var ErrBadPath = errors.New("nodegraph: path cells are not aligned")

// Glyphs used by Render.
const (
	glyphWall     = '#'
	glyphStart    = 'S'
	glyphEnd      = 'E'
	glyphJunction = 'X'
	glyphNode     = 'O'
	glyphPath     = '.'
	glyphOpen     = ' '
)

// Render writes the grid as ASCII art, one line per row.
// Walls are '#', START and END are 'S' and 'E', junctions 'X', other nodes 'O'.
// If path is non-empty, the corridor cells between consecutive path cells
// are drawn as '.'; path must be a node sequence such as dijkstra returns.
func (gr *Graph) Render(w io.Writer, path []int) error {
	g := gr.grid
	canvas := make([]byte, g.Len())
	for i := range canvas {
		switch {
		case g.At(i).IsWall():
			canvas[i] = glyphWall
		default:
			canvas[i] = glyphOpen
		}
	}

	// 1) Trace the corridors between consecutive path cells.
	for k := 1; k < len(path); k++ {
		if err := gr.trace(canvas, path[k-1], path[k]); err != nil {
			return err
		}
	}

	// 2) Nodes are drawn last so they stay visible on the path.
	for i := range gr.cls.Nodes {
		n := &gr.cls.Nodes[i]
		switch n.Kind {
		case KindStart:
			canvas[n.Cell] = glyphStart
		case KindEnd:
			canvas[n.Cell] = glyphEnd
		case KindJunction:
			canvas[n.Cell] = glyphJunction
		default:
			canvas[n.Cell] = glyphNode
		}
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		row := canvas[r*g.Cols() : (r+1)*g.Cols()]
		if _, err := bw.Write(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// trace marks every cell from a to b inclusive, which must share a row or column.
func (gr *Graph) trace(canvas []byte, a, b int) error {
	g := gr.grid
	if a < 0 || a >= g.Len() || b < 0 || b >= g.Len() {
		return fmt.Errorf("%w: cell %d→%d out of range", ErrBadPath, a, b)
	}
	ar, ac := g.Coordinate(a)
	br, bc := g.Coordinate(b)
	var step int
	switch {
	case ar == br:
		step = 1
	case ac == bc:
		step = g.Cols()
	default:
		return fmt.Errorf("%w: (%d,%d)→(%d,%d)", ErrBadPath, ar, ac, br, bc)
	}
	if b < a {
		step = -step
	}
	for i := a; ; i += step {
		canvas[i] = glyphPath
		if i == b {
			return nil
		}
	}
}

// WriteConnections writes every node followed by its four directional edges,
// in the form:
//
//	node 12 (junction) is connected to:
//	UP:	3	distance: 2
//	DOWN:	none
//	...
func (gr *Graph) WriteConnections(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range gr.cls.Nodes {
		n := &gr.cls.Nodes[i]
		fmt.Fprintf(bw, "node %d (%s) is connected to:\n", n.Cell, n.Kind)
		for _, d := range Directions {
			if e, ok := n.Edge(d); ok {
				fmt.Fprintf(bw, "%s:\t%d\tdistance: %d\n", d, e.Cell, e.Distance)
			} else {
				fmt.Fprintf(bw, "%s:\tnone\n", d)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
