// Package cellgrid holds the immutable input of a maze solve: a rectangular
// grid of per-cell connectivity bitmasks.
//
// What:
//
//   - Flag is a bitmask of UP, DOWN, LEFT, RIGHT openings plus the START, END
//     and WALL markers. Values are fixed (1, 2, 4, 8, 16, 32, 64) so a grid
//     produced by any external ingestor can be passed through unchanged.
//   - Grid stores rows×cols flags in row-major order. It is deep-copied on
//     construction and never mutated afterwards, so one Grid may be shared by
//     any number of concurrent solves.
//
// Validation (New):
//
//   - rows ≥ 1, cols ≥ 1 and len(cells) == rows*cols     → ErrDimensions
//   - a WALL cell carries no other bit                   → ErrWallConflict
//   - exactly one START cell                             → ErrStartCount
//   - exactly one END cell                               → ErrEndCount
//   - START and END on different cells                   → ErrStartIsEnd
//
// Every validation error wraps ErrMalformed.
//
// Complexity:
//
//   - New, FromRows, Traversable: O(R×C) time, O(R×C) memory.
//   - All accessors: O(1).
//
// FromRows builds a Grid from ASCII art and is the quickest way to write
// fixtures:
//
//	g, err := cellgrid.FromRows([]string{
//	    "#S###",
//	    "#   #",
//	    "###E#",
//	})
package cellgrid
