package grid

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/aoc/point"
)

// Map returns a new grid of the same size whose cells are fn(value, point),
// evaluated in row-major order.
func Map[V, T comparable](g *Grid[V], fn func(v V, p point.Point) T) *Grid[T] {
	out := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	for i, v := range g.cells {
		out.cells[i] = fn(v, g.PointFromIndex(i))
	}

	return out
}

// Reduce folds the cells in row-major order. fn receives values only.
func Reduce[V comparable, A any](g *Grid[V], fn func(acc A, v V) A, initial A) A {
	acc := initial
	for _, v := range g.cells {
		acc = fn(acc, v)
	}
	return acc
}

// ForEach calls fn for every cell in row-major order. fn receives values only.
func (g *Grid[V]) ForEach(fn func(v V)) {
	for _, v := range g.cells {
		fn(v)
	}
}

// All yields (point, value) pairs in row-major order.
func (g *Grid[V]) All() iter.Seq2[point.Point, V] {
	return func(yield func(point.Point, V) bool) {
		for i, v := range g.cells {
			if !yield(g.PointFromIndex(i), v) {
				return
			}
		}
	}
}

// Count returns the number of cells equal to v.
func (g *Grid[V]) Count(v V) int {
	n := 0
	for _, c := range g.cells {
		if c == v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid[V]) Clone() *Grid[V] {
	cells := make([]V, len(g.cells))
	copy(cells, g.cells)

	return &Grid[V]{width: g.width, height: g.height, cells: cells}
}

// String renders one line per row with one character per cell. Runes print
// as themselves; any other value prints via fmt and is replaced by '.' when
// its text is not exactly one character. Meant for debugging only.
func (g *Grid[V]) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for i, v := range g.cells {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(cellRune(v))
	}
	return sb.String()
}

func cellRune(v any) rune {
	if r, ok := v.(rune); ok {
		return r
	}
	s := []rune(fmt.Sprint(v))
	if len(s) != 1 {
		return '.'
	}
	return s[0]
}
