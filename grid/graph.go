package grid

import (
	"github.com/katalvlaran/aoc/digraph"
	"github.com/katalvlaran/aoc/point"
)

// ToGraph converts g into a directed graph. Every cell becomes a vertex keyed
// by its point and valued by its cell. For each in-bounds neighbour pair
// (from, to) under conn, edge decides whether the edge from→to exists and
// what it carries. edge must not be nil.
//
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func ToGraph[V comparable, E any](g *Grid[V], conn Connectivity, edge func(from, to point.Point) (E, bool)) *digraph.Graph[point.Point, V, E] {
	dg := digraph.New[point.Point, V, E]()
	for i, v := range g.cells {
		dg.AddVertex(g.PointFromIndex(i), v)
	}
	offsets := conn.offsets()
	for i := range g.cells {
		from := g.PointFromIndex(i)
		for _, d := range offsets {
			to := from.Add(d)
			if !g.InBounds(to) {
				continue
			}
			if e, ok := edge(from, to); ok {
				dg.AddEdge(from, to, e)
			}
		}
	}

	return dg
}
