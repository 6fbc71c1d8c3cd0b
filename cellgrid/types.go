package cellgrid

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Sentinel errors for grid construction.
var (
	// ErrMalformed is wrapped by every validation error below.
	ErrMalformed = errors.New("cellgrid: malformed grid")

	// ErrDimensions indicates non-positive dimensions or a cell count that
	// differs from rows*cols.
	ErrDimensions = fmt.Errorf("%w: dimensions inconsistent with cell count", ErrMalformed)

	// ErrWallConflict indicates a WALL cell that also carries another bit.
	ErrWallConflict = fmt.Errorf("%w: wall cell carries other flags", ErrMalformed)

	// ErrStartCount indicates zero or more than one START cell.
	ErrStartCount = fmt.Errorf("%w: exactly one start cell required", ErrMalformed)

	// ErrEndCount indicates zero or more than one END cell.
	ErrEndCount = fmt.Errorf("%w: exactly one end cell required", ErrMalformed)

	// ErrStartIsEnd indicates that START and END mark the same cell.
	ErrStartIsEnd = fmt.Errorf("%w: start and end share a cell", ErrMalformed)
)

// Flag is the per-cell connectivity bitmask.
type Flag uint8

const (
	Up    Flag = 1 << iota // opening towards the previous row
	Down                   // opening towards the next row
	Left                   // opening towards the previous column
	Right                  // opening towards the next column
	Start                  // the single start cell
	End                    // the single end cell
	Wall                   // impassable; carries no other bit
)

// directionMask selects the four opening bits.
const directionMask = Up | Down | Left | Right

// Has reports whether every bit of f2 is set in f.
func (f Flag) Has(f2 Flag) bool { return f&f2 == f2 }

// Directions returns only the opening bits of f.
func (f Flag) Directions() Flag { return f & directionMask }

// Openings returns the number of opening bits set in f.
func (f Flag) Openings() int { return bits.OnesCount8(uint8(f & directionMask)) }

// IsWall reports whether f marks a wall cell.
func (f Flag) IsWall() bool { return f&Wall != 0 }

var flagNames = [...]struct {
	bit  Flag
	name string
}{
	{Up, "UP"},
	{Down, "DOWN"},
	{Left, "LEFT"},
	{Right, "RIGHT"},
	{Start, "START"},
	{End, "END"},
	{Wall, "WALL"},
}

// String renders f as "UP|RIGHT|START"; an empty mask renders as "NONE".
func (f Flag) String() string {
	if f == 0 {
		return "NONE"
	}
	var sb strings.Builder
	for _, fn := range flagNames {
		if f&fn.bit == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(fn.name)
	}

	return sb.String()
}

// Grid is an immutable rows×cols array of cell flags in row-major order.
// start and end are cached grid indices of the START and END cells.
type Grid struct {
	rows, cols int
	cells      []Flag
	start, end int
}
