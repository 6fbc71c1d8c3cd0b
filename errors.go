package lvmaze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/cellgrid"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/nodegraph"
)

// ErrorKind tells the caller which class of failure a solve hit.
type ErrorKind int

const (
	// KindMalformedGrid: START/END cardinality, wall flags or dimensions are wrong.
	KindMalformedGrid ErrorKind = iota + 1
	// KindUnreachableEnd: no path connects START to END.
	KindUnreachableEnd
	// KindEmptyGraph: the grid produced no nodes.
	KindEmptyGraph
)

// String returns a short kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedGrid:
		return "malformed grid"
	case KindUnreachableEnd:
		return "unreachable end"
	case KindEmptyGraph:
		return "empty graph"
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels matched by (*SolveError).Is, one per ErrorKind.
var (
	ErrMalformedGrid  = errors.New("lvmaze: malformed grid")
	ErrUnreachableEnd = errors.New("lvmaze: end is unreachable")
	ErrEmptyGraph     = errors.New("lvmaze: empty graph")
)

// SolveError is the typed failure returned by Solve and NewGrid.
// Err keeps the underlying package error for context.
type SolveError struct {
	Kind ErrorKind
	Err  error
}

// Error implements error.
func (e *SolveError) Error() string {
	return fmt.Sprintf("lvmaze: %s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying package error.
func (e *SolveError) Unwrap() error { return e.Err }

// Is matches the sentinel that corresponds to e.Kind.
func (e *SolveError) Is(target error) bool {
	switch target {
	case ErrMalformedGrid:
		return e.Kind == KindMalformedGrid
	case ErrUnreachableEnd:
		return e.Kind == KindUnreachableEnd
	case ErrEmptyGraph:
		return e.Kind == KindEmptyGraph
	}

	return false
}

// classify maps a package error onto a SolveError. Errors that match no kind
// are returned unchanged.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cellgrid.ErrMalformed):
		return &SolveError{Kind: KindMalformedGrid, Err: err}
	case errors.Is(err, nodegraph.ErrNilGrid):
		return &SolveError{Kind: KindMalformedGrid, Err: err}
	case errors.Is(err, nodegraph.ErrEmptyGraph):
		return &SolveError{Kind: KindEmptyGraph, Err: err}
	case errors.Is(err, dijkstra.ErrUnreachableEnd):
		return &SolveError{Kind: KindUnreachableEnd, Err: err}
	}

	return err
}
