// Package nodegraph turns a cellgrid.Grid into a sparse graph of decision
// points.
//
// What:
//
//   - Classify keeps only graph-significant cells: START, END, junctions
//     (three or more openings), corridor turns (a vertical and a horizontal
//     opening) and dead ends (one opening). Straight corridor cells are not
//     materialized; their length is folded into edge distances.
//   - Connect scans right and down from every node until it meets a wall or
//     another node, recording both ends of each edge in one step.
//   - Build runs both and returns an immutable *Graph.
//
// Node lookup by grid index goes through a dense index table, so the edge
// scan costs O(1) per visited cell.
//
// Complexity:
//
//   - Classify: O(R×C) time and memory.
//   - Connect:  O(R×C) cells crossed in total for well-formed grids, since
//     every scan stops at the next node or wall.
//
// Errors:
//
//   - ErrNilGrid:    nil grid passed to Build.
//   - ErrEmptyGraph: classification produced no nodes.
//   - ErrBadPath:    Render was given a path whose cells are not aligned.
//
// Debug output:
//
//   - Render draws the grid with its nodes and, optionally, a solved path.
//   - WriteConnections lists every node's four directional edges.
package nodegraph
