// Package dijkstra defines the options, result type and sentinel errors for
// the maze shortest-path solver.
package dijkstra

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *nodegraph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachableEnd indicates that no predecessor chain connects the end
	// node back to the start node.
	ErrUnreachableEnd = errors.New("dijkstra: end is unreachable from start")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrQueueState indicates that the priority queue rejected an operation
	// the solver relies on, e.g. a decrease-key on a handle it no longer owns.
	ErrQueueState = errors.New("dijkstra: priority queue out of sync with distances")

	// ErrNilLogger indicates that WithLogger was given a nil logger.
	ErrNilLogger = errors.New("dijkstra: logger is nil")
)

// infinity marks a node that has not been reached.
const infinity = math.MaxInt64

// Options configures ShortestPath.
//
// MaxDistance – nodes whose tentative distance would exceed this value are
//
//	not admitted. Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// StopAtEnd   – stop as soon as the end node is settled instead of draining
//
//	the queue. The returned path is the same either way.
//
// Logger      – receives Debug records for every explored node and neighbour.
//
//	Default discards everything.
type Options struct {
	MaxDistance int64
	StopAtEnd   bool
	Logger      *slog.Logger
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance caps the explored distance. Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithStopAtEnd enables the early exit once the end node is settled.
func WithStopAtEnd() Option {
	return func(o *Options) {
		o.StopAtEnd = true
	}
}

// WithLogger routes the exploration trace to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(ErrNilLogger.Error())
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct with no distance cap, a full
// drain of the queue and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance: infinity,
		StopAtEnd:   false,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Path is a shortest path from the START cell to the END cell.
type Path struct {
	// Cells holds grid indices, start first and end last.
	Cells []int
	// Nodes holds the matching node indices.
	Nodes []int
	// Distance is the total number of cells advanced.
	Distance int64
}

// Len returns the number of nodes on the path.
func (p *Path) Len() int { return len(p.Cells) }
