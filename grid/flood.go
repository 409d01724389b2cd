package grid

import (
	"iter"

	"github.com/katalvlaran/aoc/point"
)

// FloodFill yields every point reachable from origin by repeatedly stepping
// to a neighbour for which opts.IsEqual(current, neighbour) holds, in BFS
// order. Each point is yielded once; an out-of-bounds origin yields nothing.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and the queue.
func (g *Grid[V]) FloodFill(origin point.Point, opts FloodOptions[V]) iter.Seq[point.Point] {
	isEqual := opts.IsEqual
	if isEqual == nil {
		isEqual = func(a, b V) bool { return a == b }
	}
	conn := Conn4
	if opts.IncludeDiagonal {
		conn = Conn8
	}
	offsets := conn.offsets()

	return func(yield func(point.Point) bool) {
		if !g.InBounds(origin) {
			return
		}
		seen := make([]bool, len(g.cells))
		i0 := g.Index(origin)
		seen[i0] = true
		queue := []int{i0}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			up := g.PointFromIndex(u)
			if !yield(up) {
				return
			}
			for _, d := range offsets {
				vp := up.Add(d)
				if !g.InBounds(vp) {
					continue
				}
				vi := g.Index(vp)
				if seen[vi] || !isEqual(g.cells[u], g.cells[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
}

// Components partitions the grid into contiguous regions of equal value
// under conn connectivity. Regions are returned in row-major order of their
// first cell; points inside a region are in BFS order from that cell.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (g *Grid[V]) Components(conn Connectivity) [][]point.Point {
	seen := make([]bool, len(g.cells))
	opts := FloodOptions[V]{IncludeDiagonal: conn == Conn8}
	var comps [][]point.Point

	for i := range g.cells {
		if seen[i] {
			continue
		}
		var comp []point.Point
		for p := range g.FloodFill(g.PointFromIndex(i), opts) {
			seen[g.Index(p)] = true
			comp = append(comp, p)
		}
		comps = append(comps, comp)
	}

	return comps
}
