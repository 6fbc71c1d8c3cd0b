package nodegraph

import (
	"errors"

	"github.com/katalvlaran/lvmaze/cellgrid"
)

// Sentinel errors for graph construction.
var (
	// ErrNilGrid indicates a nil *cellgrid.Grid passed to Build.
	ErrNilGrid = errors.New("nodegraph: grid is nil")

	// ErrEmptyGraph indicates classification produced no nodes.
	ErrEmptyGraph = errors.New("nodegraph: grid yields no nodes")
)

// noNode marks a grid cell that is not a node in the index table.
const noNode = -1

// Direction names one of the four scan directions.
// The numeric order UP, DOWN, LEFT, RIGHT is the relaxation order used by
// the solver.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right

	directionCount
)

// Directions lists all directions in scan order.
var Directions = [directionCount]Direction{Up, Down, Left, Right}

// String returns "UP", "DOWN", "LEFT" or "RIGHT".
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}

	return "INVALID"
}

// Opposite returns the reciprocal direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Flag returns the cell opening bit for d.
func (d Direction) Flag() cellgrid.Flag {
	return cellgrid.Up << d
}

// Kind classifies a node.
type Kind uint8

const (
	KindStart    Kind = iota // the START cell
	KindEnd                  // the END cell
	KindJunction             // three or more openings
	KindTurn                 // one vertical and one horizontal opening
	KindDeadEnd              // exactly one opening
)

// String returns a lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindJunction:
		return "junction"
	case KindTurn:
		return "turn"
	case KindDeadEnd:
		return "dead-end"
	}

	return "invalid"
}

// Edge is one directional connection between two nodes.
// Distance is the number of cells advanced along the row or column and is
// always ≥ 1 for a present edge.
type Edge struct {
	Node     int // index of the neighbour in the node list
	Cell     int // grid index of the neighbour
	Distance int // cells between the two nodes along one axis
}

// Node is one graph-significant cell with up to four directional edges.
type Node struct {
	Cell  int  // grid index
	Kind  Kind // start, end, junction, turn or dead end
	edges [directionCount]Edge
}

// Edge returns the edge in direction d, or false if the node has none.
func (n Node) Edge(d Direction) (Edge, bool) {
	if d >= directionCount || n.edges[d].Distance == 0 {
		return Edge{}, false
	}

	return n.edges[d], true
}

// Degree returns the number of present edges.
func (n Node) Degree() int {
	deg := 0
	for _, e := range n.edges {
		if e.Distance > 0 {
			deg++
		}
	}

	return deg
}

// setEdge records e in direction d. Only Connect mutates edges.
func (n *Node) setEdge(d Direction, e Edge) {
	n.edges[d] = e
}
