package lvmaze

import (
	"github.com/katalvlaran/lvmaze/cellgrid"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/nodegraph"
)

// Stats are the aggregate counts reported alongside a solved path.
type Stats struct {
	TraversableCells int // non-WALL cells
	Nodes            int // graph-significant cells
	DeadEnds         int // nodes with one opening
	Junctions        int // nodes with three or more openings
	Edges            int // undirected node-to-node edges
}

// Solution is the result of a successful Solve.
type Solution struct {
	// Path holds grid indices of the path's nodes, START first, END last.
	Path []int
	// Distance is the number of cells advanced from START to END.
	Distance int64
	Stats    Stats
	graph    *nodegraph.Graph
}

// Graph returns the node graph the solution was computed on, e.g. for Render.
func (s *Solution) Graph() *nodegraph.Graph { return s.graph }

// NewGrid validates cells as a rows×cols grid. Validation failures are
// returned as *SolveError with KindMalformedGrid.
func NewGrid(rows, cols int, cells []cellgrid.Flag) (*cellgrid.Grid, error) {
	g, err := cellgrid.New(rows, cols, cells)
	if err != nil {
		return nil, classify(err)
	}

	return g, nil
}

// Solve builds the node graph of g and returns the shortest START→END path.
//
// Failures are *SolveError values:
//   - KindMalformedGrid  for a nil grid;
//   - KindEmptyGraph     if classification yields no nodes;
//   - KindUnreachableEnd if no path exists.
//
// Solve keeps no state between calls; concurrent calls are safe.
func Solve(g *cellgrid.Grid, opts ...dijkstra.Option) (*Solution, error) {
	// 1) Sparse graph.
	gr, err := nodegraph.Build(g)
	if err != nil {
		return nil, classify(err)
	}

	// 2) Shortest path.
	p, err := dijkstra.ShortestPath(gr, opts...)
	if err != nil {
		return nil, classify(err)
	}

	return &Solution{
		Path:     p.Cells,
		Distance: p.Distance,
		Stats: Stats{
			TraversableCells: g.Traversable(),
			Nodes:            gr.Len(),
			DeadEnds:         gr.DeadEnds(),
			Junctions:        gr.Junctions(),
			Edges:            gr.EdgeCount(),
		},
		graph: gr,
	}, nil
}
