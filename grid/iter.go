package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/aoc/point"
)

// RectPoints yields every point of the w×h rectangle whose top-left corner is
// (x,y), row by row. Points are not clipped to the grid.
func (g *Grid[V]) RectPoints(x, y, w, h int) iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		for py := y; py < y+h; py++ {
			for px := x; px < x+w; px++ {
				if !yield(point.Point{X: px, Y: py}) {
					return
				}
			}
		}
	}
}

// EdgePoints yields the outer boundary exactly once per point: the top row,
// the bottom row, then the left and right columns without their corners.
func (g *Grid[V]) EdgePoints() iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		last := g.height - 1
		for x := 0; x < g.width; x++ {
			if !yield(point.Point{X: x, Y: 0}) {
				return
			}
		}
		if last > 0 {
			for x := 0; x < g.width; x++ {
				if !yield(point.Point{X: x, Y: last}) {
					return
				}
			}
		}
		for y := 1; y < last; y++ {
			if !yield(point.Point{X: 0, Y: y}) {
				return
			}
			if g.width > 1 && !yield(point.Point{X: g.width - 1, Y: y}) {
				return
			}
		}
	}
}

// LinePoints yields origin, origin+slope, origin+2·slope, … while the points
// stay inside the grid. Returns ErrZeroSlope for slope (0,0).
func (g *Grid[V]) LinePoints(slope, origin point.Point, opts LineOptions) (iter.Seq[point.Point], error) {
	if slope == (point.Point{}) {
		return nil, ErrZeroSlope
	}
	return func(yield func(point.Point) bool) {
		p := origin
		if opts.ExcludeOrigin {
			p = p.Add(slope)
		}
		for ; g.InBounds(p); p = p.Add(slope) {
			if !yield(p) {
				return
			}
		}
	}, nil
}

// CardinalLine yields the points from p0 to p1 inclusive. The endpoints must
// share a column or a row; otherwise ErrNotAxisAligned is returned.
func (g *Grid[V]) CardinalLine(p0, p1 point.Point) (iter.Seq[point.Point], error) {
	if p0.X != p1.X && p0.Y != p1.Y {
		return nil, fmt.Errorf("%w: %v and %v", ErrNotAxisAligned, p0, p1)
	}
	step := point.Point{X: sign(p1.X - p0.X), Y: sign(p1.Y - p0.Y)}
	n := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y))

	return func(yield func(point.Point) bool) {
		p := p0
		for i := 0; i <= n; i++ {
			if !yield(p) {
				return
			}
			p = p.Add(step)
		}
	}, nil
}

// AdjacentPoints yields the neighbours of origin clockwise from north.
func (g *Grid[V]) AdjacentPoints(origin point.Point, opts AdjacentOptions) iter.Seq[point.Point] {
	conn := Conn8
	if opts.OrthogonalOnly {
		conn = Conn4
	}
	offsets := conn.offsets()

	return func(yield func(point.Point) bool) {
		for _, d := range offsets {
			p := origin.Add(d)
			if !opts.IncludeOutOfBounds && !g.InBounds(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Points yields every point of the grid in the order chosen by dir.
func (g *Grid[V]) Points(dir Direction) iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		switch dir {
		case Up:
			for y := g.height - 1; y >= 0; y-- {
				for x := 0; x < g.width; x++ {
					if !yield(point.Point{X: x, Y: y}) {
						return
					}
				}
			}
		case Right:
			for x := 0; x < g.width; x++ {
				for y := 0; y < g.height; y++ {
					if !yield(point.Point{X: x, Y: y}) {
						return
					}
				}
			}
		case Left:
			for x := g.width - 1; x >= 0; x-- {
				for y := 0; y < g.height; y++ {
					if !yield(point.Point{X: x, Y: y}) {
						return
					}
				}
			}
		default:
			for i := range g.cells {
				if !yield(g.PointFromIndex(i)) {
					return
				}
			}
		}
	}
}

// PointsInRow yields row y left to right; nothing if y is out of range.
func (g *Grid[V]) PointsInRow(y int) iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		if y < 0 || y >= g.height {
			return
		}
		for x := 0; x < g.width; x++ {
			if !yield(point.Point{X: x, Y: y}) {
				return
			}
		}
	}
}

// PointsInColumn yields column x top to bottom; nothing if x is out of range.
func (g *Grid[V]) PointsInColumn(x int) iter.Seq[point.Point] {
	return func(yield func(point.Point) bool) {
		if x < 0 || x >= g.width {
			return
		}
		for y := 0; y < g.height; y++ {
			if !yield(point.Point{X: x, Y: y}) {
				return
			}
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
