package nodegraph

import "github.com/katalvlaran/lvmaze/cellgrid"

// ClassifyCell decides whether a single cell is a node and of which kind.
// It depends on nothing but f, so cells can be classified in any order.
//
// Precedence:
//  1. WALL                                  → not a node
//  2. START or END                          → KindStart / KindEnd
//  3. three or more openings                → KindJunction
//  4. a vertical and a horizontal opening   → KindTurn
//  5. exactly one opening                   → KindDeadEnd
//  6. straight corridor or no openings      → not a node
func ClassifyCell(f cellgrid.Flag) (Kind, bool) {
	switch {
	case f.IsWall():
		return 0, false
	case f&cellgrid.Start != 0:
		return KindStart, true
	case f&cellgrid.End != 0:
		return KindEnd, true
	}

	open := f.Openings()
	vertical := f&(cellgrid.Up|cellgrid.Down) != 0
	horizontal := f&(cellgrid.Left|cellgrid.Right) != 0
	switch {
	case open >= 3:
		return KindJunction, true
	case vertical && horizontal:
		return KindTurn, true
	case open == 1:
		return KindDeadEnd, true
	}

	return 0, false
}

// Classification is the result of one classification pass. Nodes appear in
// row-major order of their cells. Junctions and DeadEnds are aggregates over
// Nodes and are returned with them rather than accumulated anywhere else.
type Classification struct {
	Nodes     []Node
	Junctions int
	DeadEnds  int

	index      []int // grid index → node index, or noNode
	start, end int   // node indices of the START and END cells, or noNode
}

// NodeAt returns the node index for grid cell i.
// Complexity: O(1).
func (c *Classification) NodeAt(i int) (int, bool) {
	if i < 0 || i >= len(c.index) || c.index[i] == noNode {
		return noNode, false
	}

	return c.index[i], true
}

// Classify runs ClassifyCell over every cell of g and collects the nodes
// together with the junction and dead-end counts. Edges are left empty;
// see Connect.
// Complexity: O(R×C) time, O(R×C) memory for the index table.
func Classify(g *cellgrid.Grid) Classification {
	c := Classification{
		index: make([]int, g.Len()),
		start: noNode,
		end:   noNode,
	}
	for i := 0; i < g.Len(); i++ {
		kind, ok := ClassifyCell(g.At(i))
		if !ok {
			c.index[i] = noNode
			continue
		}
		switch kind {
		case KindStart:
			c.start = len(c.Nodes)
		case KindEnd:
			c.end = len(c.Nodes)
		case KindJunction:
			c.Junctions++
		case KindDeadEnd:
			c.DeadEnds++
		}
		c.index[i] = len(c.Nodes)
		c.Nodes = append(c.Nodes, Node{Cell: i, Kind: kind})
	}

	return c
}

// Connect fills the edges of every node in c.
//
// For each node it scans right along its row, then down along its column,
// starting one cell past the node. A WALL cell ends the scan with no edge.
// The first node met receives the reciprocal edge (LEFT or UP) with the same
// distance, so one scan fills both ends and edges are symmetric.
// Nodes that are never met in a direction keep that edge absent.
//
// Complexity: O(N × max(R, C)) worst case; each cell is crossed at most
// once per axis in practice since scans stop at the next node.
func Connect(c *Classification, g *cellgrid.Grid) {
	rows, cols := g.Rows(), g.Cols()
	for src := range c.Nodes {
		r, col := g.Coordinate(c.Nodes[src].Cell)

		// 1) Scan right along the row.
		for cc := col + 1; cc < cols; cc++ {
			if c.link(g, src, g.Index(r, cc), Right, cc-col) {
				break
			}
		}

		// 2) Scan down along the column.
		for rr := r + 1; rr < rows; rr++ {
			if c.link(g, src, g.Index(rr, col), Down, rr-r) {
				break
			}
		}
	}
}

// link inspects one scanned cell. It reports true when the scan must stop:
// either the cell is a wall, or it is a node and the edge pair was recorded.
func (c *Classification) link(g *cellgrid.Grid, src, cell int, d Direction, dist int) bool {
	if g.At(cell).IsWall() {
		return true
	}
	dst, ok := c.NodeAt(cell)
	if !ok {
		return false
	}
	c.Nodes[src].setEdge(d, Edge{Node: dst, Cell: cell, Distance: dist})
	c.Nodes[dst].setEdge(d.Opposite(), Edge{Node: src, Cell: c.Nodes[src].Cell, Distance: dist})

	return true
}
