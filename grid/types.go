package grid

import (
	"errors"

	"github.com/katalvlaran/aoc/point"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrZeroSlope indicates a line with slope (0,0), which would never leave its origin.
	ErrZeroSlope = errors.New("grid: line slope must be non-zero")
	// ErrNotAxisAligned indicates segment endpoints that share neither x nor y.
	ErrNotAxisAligned = errors.New("grid: endpoints must share a row or a column")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Neighbour vectors clockwise from north. Kept private so callers cannot
// rewrite them.
var (
	offsets4 = [...]point.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	offsets8 = [...]point.Point{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	}
)

// offsets returns the neighbour vectors for c, clockwise from north.
func (c Connectivity) offsets() []point.Point {
	if c == Conn8 {
		return offsets8[:]
	}
	return offsets4[:]
}

// Direction selects the traversal order of Points.
type Direction int

const (
	// Down walks rows top to bottom, each row left to right (plain row-major).
	Down Direction = iota
	// Up walks rows bottom to top, each row left to right.
	Up
	// Right walks columns left to right, each column top to bottom.
	Right
	// Left walks columns right to left, each column top to bottom.
	Left
)

// LineOptions tunes LinePoints.
type LineOptions struct {
	// ExcludeOrigin skips the starting point.
	ExcludeOrigin bool
}

// AdjacentOptions tunes AdjacentPoints.
type AdjacentOptions struct {
	// IncludeOutOfBounds also yields neighbours outside the grid, which is
	// handy for detecting cells that touch the border.
	IncludeOutOfBounds bool
	// OrthogonalOnly restricts neighbours to N, E, S, W.
	OrthogonalOnly bool
}

// FloodOptions tunes FloodFill.
type FloodOptions[V comparable] struct {
	// IncludeDiagonal spreads to the 8 surrounding cells instead of 4.
	IncludeDiagonal bool
	// IsEqual decides whether the fill may step from a cell holding cur to a
	// neighbour holding next. Nil means cur == next.
	IsEqual func(cur, next V) bool
}
