// Package dijkstra computes the shortest START→END path over a maze node
// graph built by nodegraph.
//
// Overview:
//
//   - Every node has at most four edges (UP, DOWN, LEFT, RIGHT), weighted by
//     the number of cells between the two nodes. Weights are always ≥ 1.
//   - Tentative distances live in dense slices indexed by node, and a side
//     table maps each node to its queue handle, so "is this node already
//     queued, and where" is answered in O(1).
//   - The frontier is a pq.Queue with real decrease-key: a node is inserted
//     the first time it is reached and tightened in place afterwards, so the
//     queue never holds more than one entry per node.
//
// Tie-break:
//
//   - Edges are relaxed in UP, DOWN, LEFT, RIGHT order and a neighbour is
//     only updated on a strictly shorter candidate, so among equal
//     candidates from one node the first direction wins. The total distance
//     is optimal regardless of which tie is taken.
//
// Complexity:
//
//   - Time:  O(E log V) with E ≤ 4V.
//   - Space: O(V) for distances, predecessors, visited flags and handles.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil graph passed to ShortestPath.
//   - ErrUnreachableEnd:  the predecessor chain from END does not reach START
//     (disconnected regions, isolated nodes, or MaxDistance too small).
//   - ErrQueueState:      the frontier rejected an insert-or-decrease step;
//     wraps the pq error. Not expected from a well-formed run.
//   - ErrBadMaxDistance:  panic value of WithMaxDistance for negative caps.
//   - ErrNilLogger:       panic value of WithLogger(nil).
//
// API reference:
//
//	func ShortestPath(g *nodegraph.Graph, opts ...Option) (*Path, error)
//
//	  - WithMaxDistance(int64): do not admit nodes farther than the cap.
//	  - WithStopAtEnd():        return once END is settled.
//	  - WithLogger(*slog.Logger): Debug trace of the exploration.
//
// Thread safety:
//
//   - ShortestPath keeps all state in a per-call runner and only reads the
//     graph, so any number of calls may share one graph concurrently.
package dijkstra
