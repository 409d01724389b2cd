package grid

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/aoc/point"
)

// Grid is a Width×Height array of cells stored in row-major order.
// Its dimensions never change after construction.
type Grid[V comparable] struct {
	width, height int
	cells         []V
}

// New allocates a w×h grid with every cell set to initial.
// Returns ErrEmptyGrid unless both dimensions are positive.
func New[V comparable](w, h int, initial V) (*Grid[V], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, w, h)
	}
	cells := make([]V, w*h)
	for i := range cells {
		cells[i] = initial
	}

	return &Grid[V]{width: w, height: h, cells: cells}, nil
}

// LoadFromStrings builds a rune grid: row y, rune x becomes cell (x,y).
func LoadFromStrings(rows []string) (*Grid[rune], error) {
	return LoadFromStringsFunc(rows, func(ch rune, _ point.Point) (rune, error) {
		return ch, nil
	})
}

// LoadFromStringsFunc builds a grid from equal-length rows, converting each
// rune with transform. Returns ErrEmptyGrid if rows is empty or a row is
// empty, ErrNonRectangular if row lengths differ, or the first transform error.
func LoadFromStringsFunc[V comparable](rows []string, transform func(ch rune, p point.Point) (V, error)) (*Grid[V], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(rows[0])
	for y, row := range rows {
		n := utf8.RuneCountInString(row)
		if n == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrEmptyGrid, y)
		}
		if n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}

	g := &Grid[V]{width: w, height: len(rows), cells: make([]V, 0, w*len(rows))}
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			p := point.Point{X: x, Y: y}
			v, err := transform(ch, p)
			if err != nil {
				return nil, fmt.Errorf("grid: cell %v: %w", p, err)
			}
			g.cells = append(g.cells, v)
			x++
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid[V]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[V]) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid[V]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid[V]) InBounds(p point.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its row-major index y*Width + x. It does not check bounds.
func (g *Grid[V]) Index(p point.Point) int {
	return p.Y*g.width + p.X
}

// PointFromIndex converts a row-major index back to (x,y).
func (g *Grid[V]) PointFromIndex(i int) point.Point {
	return point.Point{X: i % g.width, Y: i / g.width}
}

// Value returns the cell at p, or ErrOutOfBounds.
func (g *Grid[V]) Value(p point.Point) (V, error) {
	if !g.InBounds(p) {
		var zero V
		return zero, g.outOfBounds(p)
	}
	return g.cells[g.Index(p)], nil
}

// Set stores v at p, or returns ErrOutOfBounds.
func (g *Grid[V]) Set(p point.Point, v V) error {
	if !g.InBounds(p) {
		return g.outOfBounds(p)
	}
	g.cells[g.Index(p)] = v

	return nil
}

// At returns the cell at p and panics when p is out of bounds, the way
// indexing a slice does.
func (g *Grid[V]) At(p point.Point) V {
	if !g.InBounds(p) {
		panic(g.outOfBounds(p))
	}
	return g.cells[g.Index(p)]
}

// Lookup returns the cell at p and whether p is in bounds.
func (g *Grid[V]) Lookup(p point.Point) (V, bool) {
	if !g.InBounds(p) {
		var zero V
		return zero, false
	}
	return g.cells[g.Index(p)], true
}

// IndexOf returns the first row-major index ≥ from holding v, or -1.
// A negative from counts back from the end of the grid, floored at 0.
func (g *Grid[V]) IndexOf(v V, from int) int {
	if from < 0 {
		from = max(len(g.cells)+from, 0)
	}
	for i := from; i < len(g.cells); i++ {
		if g.cells[i] == v {
			return i
		}
	}
	return -1
}

func (g *Grid[V]) outOfBounds(p point.Point) error {
	return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, p, g.width, g.height)
}
