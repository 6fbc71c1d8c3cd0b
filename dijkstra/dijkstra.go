package dijkstra

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvmaze/nodegraph"
	"github.com/katalvlaran/lvmaze/pq"
)

// noPrev marks a node without predecessor.
const noPrev = -1

// ShortestPath runs Dijkstra's algorithm from g.Start() and returns the path
// to g.End().
//
// Returns:
//
//   - path: start→end ordered cells and nodes plus the total distance.
//   - err:  ErrNilGraph, ErrUnreachableEnd if the end cannot be reached, or
//     ErrQueueState if the frontier rejects an update.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have both a start and an end node (ErrUnreachableEnd otherwise).
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V)
func ShortestPath(g *nodegraph.Graph, opts ...Option) (*Path, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Start() < 0 || g.End() < 0 {
		return nil, fmt.Errorf("%w: graph lacks a start or end node", ErrUnreachableEnd)
	}

	// 3) Prepare per-run state and run the main loop.
	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Walk predecessors back from the end.
	return r.reconstruct()
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       *nodegraph.Graph
	options Options
	log     *slog.Logger
	dist    []int64           // node index → best known distance
	prev    []int             // node index → predecessor node, or noPrev
	visited []bool            // node index → distance is final
	handles []*pq.Handle[int] // node index → queue handle, nil if never queued
	queue   *pq.Queue[int]
}

// newRunner allocates state for every node and seeds the queue with the start.
func newRunner(g *nodegraph.Graph, cfg Options) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		log:     cfg.Logger,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		handles: make([]*pq.Handle[int], n),
		queue:   pq.New[int](n),
	}

	// 1) dist[v] = +∞ and prev[v] = none for all v.
	for v := 0; v < n; v++ {
		r.dist[v] = infinity
		r.prev[v] = noPrev
	}

	// 2) Distance to the start is zero; it is the only seed.
	s := g.Start()
	r.dist[s] = 0
	r.handles[s] = r.queue.Insert(0, s)

	return r
}

// process extracts the closest unsettled node until the queue is empty (or,
// with StopAtEnd, until the end node is settled). Queue failures are returned
// wrapped in ErrQueueState.
func (r *runner) process() error {
	end := r.g.End()
	for r.queue.Len() > 0 {
		// 1) Pop the closest node.
		_, u, err := r.queue.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: extract: %w", ErrQueueState, err)
		}

		// 2) The queue holds one entry per node, so a settled node here
		//    would be a bug in the queue; skip it rather than relax twice.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.log.Debug("exploring node", "cell", r.g.Node(u).Cell, "dist", r.dist[u])

		if u == end && r.options.StopAtEnd {
			return nil
		}

		// 3) Relax up to four edges.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every unsettled neighbour of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	node := r.g.Node(u)
	for _, d := range nodegraph.Directions {
		e, ok := node.Edge(d)
		if !ok {
			continue
		}
		v := e.Node
		if r.visited[v] {
			r.log.Debug("neighbour already settled", "from", node.Cell, "dir", d, "cell", e.Cell)
			continue
		}

		// Candidate distance through u; strict < keeps the first tie.
		cand := r.dist[u] + int64(e.Distance)
		if cand > r.options.MaxDistance || cand >= r.dist[v] {
			continue
		}
		r.dist[v] = cand
		r.prev[v] = u
		r.log.Debug("relaxed neighbour", "from", node.Cell, "dir", d, "cell", e.Cell, "dist", cand)

		// First sighting inserts; afterwards tighten the queued entry.
		if h := r.handles[v]; h != nil {
			if err := r.queue.DecreaseKey(h, cand); err != nil {
				return fmt.Errorf("%w: decrease cell %d to %d: %w", ErrQueueState, e.Cell, cand, err)
			}
			r.log.Debug("tightened queued node", "cell", e.Cell, "dist", cand)
			continue
		}
		r.handles[v] = r.queue.Insert(cand, v)
	}

	return nil
}

// reconstruct follows prev from the end node to the start node and returns the
// reversed sequence. A broken chain yields ErrUnreachableEnd.
func (r *runner) reconstruct() (*Path, error) {
	start, end := r.g.Start(), r.g.End()
	if r.dist[end] == infinity {
		return nil, fmt.Errorf("%w: end cell %d", ErrUnreachableEnd, r.g.Node(end).Cell)
	}

	var nodes []int
	for at := end; ; at = r.prev[at] {
		if at == noPrev || len(nodes) > len(r.prev) {
			return nil, fmt.Errorf("%w: predecessor chain broken at node %d", ErrUnreachableEnd, len(nodes))
		}
		nodes = append(nodes, at)
		if at == start {
			break
		}
	}

	// Reverse into start→end order and map to grid cells.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	cells := make([]int, len(nodes))
	for i, n := range nodes {
		cells[i] = r.g.Node(n).Cell
	}

	return &Path{Cells: cells, Nodes: nodes, Distance: r.dist[end]}, nil
}
