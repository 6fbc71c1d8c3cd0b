package nodegraph

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/cellgrid"
)

// Graph is the sparse node graph of one grid. It is read-only after Build.
type Graph struct {
	grid *cellgrid.Grid
	cls  Classification
}

// Build classifies g and connects the resulting nodes.
//
// Returns:
//   - ErrNilGrid if g is nil.
//   - ErrEmptyGraph if no cell is a node (zero-size or all-wall grid).
//
// Complexity: O(R×C) classification plus the scans of Connect.
func Build(g *cellgrid.Grid) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cls := Classify(g)
	if len(cls.Nodes) == 0 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrEmptyGraph, g.Rows(), g.Cols())
	}
	Connect(&cls, g)

	return &Graph{grid: g, cls: cls}, nil
}

// Grid returns the grid the graph was built from.
func (gr *Graph) Grid() *cellgrid.Grid { return gr.grid }

// Len returns the number of nodes.
func (gr *Graph) Len() int { return len(gr.cls.Nodes) }

// Node returns a copy of node i.
func (gr *Graph) Node(i int) Node { return gr.cls.Nodes[i] }

// Nodes returns a copy of the node list.
func (gr *Graph) Nodes() []Node {
	out := make([]Node, len(gr.cls.Nodes))
	copy(out, gr.cls.Nodes)

	return out
}

// NodeAt returns the node index of grid cell i, if that cell is a node.
func (gr *Graph) NodeAt(i int) (int, bool) { return gr.cls.NodeAt(i) }

// Start returns the node index of the START cell, or -1 if absent.
func (gr *Graph) Start() int { return gr.cls.start }

// End returns the node index of the END cell, or -1 if absent.
func (gr *Graph) End() int { return gr.cls.end }

// Junctions returns the number of junction nodes.
func (gr *Graph) Junctions() int { return gr.cls.Junctions }

// DeadEnds returns the number of dead-end nodes.
func (gr *Graph) DeadEnds() int { return gr.cls.DeadEnds }

// EdgeCount returns the number of undirected edges.
func (gr *Graph) EdgeCount() int {
	n := 0
	for i := range gr.cls.Nodes {
		n += gr.cls.Nodes[i].Degree()
	}

	return n / 2
}
