package dijkstra

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/aoc/digraph"
	"github.com/katalvlaran/aoc/pqueue"
)

// ShortestPaths computes shortest distances from source to every reachable
// vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. MaxDistance, if given, must be ≥ 0 (ErrBadMaxDistance).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// Edges whose endpoints are not vertices (for example after
// digraph.RemoveVertex) are ignored.
func ShortestPaths[K comparable, V any, W Weight](g *digraph.Graph[K, V, W], source K, opts ...Option) (*Result[K, W], error) {
	// 1) Build and validate options
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.HasMaxDistance && cfg.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	// 2) Pre-scan all edges to fail fast on negative weights.
	vertices := g.Vertices()
	for _, u := range vertices {
		for _, v := range g.Neighbors(u) {
			if w, _ := g.EdgeValue(u, v); w < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 3) Run the main loop.
	r := &runner[K, V, W]{
		g:       g,
		options: cfg,
		dist:    make(map[K]W, len(vertices)),
		settled: make(map[K]bool, len(vertices)),
		pq: pqueue.New(func(a, b item[K, W]) int {
			return cmp.Compare(a.dist, b.dist)
		}),
	}
	if cfg.ReturnPath {
		r.prev = make(map[K]K, len(vertices))
	}
	r.dist[source] = 0
	r.pq.Push(item[K, W]{id: source})
	r.process()

	return &Result[K, W]{Source: source, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single run.
type runner[K comparable, V any, W Weight] struct {
	g       *digraph.Graph[K, V, W]
	options Options
	dist    map[K]W
	prev    map[K]K
	settled map[K]bool
	pq      *pqueue.Queue[item[K, W]]
}

// item is one heap entry; stale entries are skipped when popped.
type item[K comparable, W Weight] struct {
	id   K
	dist W
}

func (r *runner[K, V, W]) process() {
	for {
		it, ok := r.pq.Pop()
		if !ok {
			return
		}
		if r.settled[it.id] {
			continue
		}
		r.settled[it.id] = true
		r.relax(it.id)
	}
}

// relax tries to improve every neighbour of the settled vertex u.
func (r *runner[K, V, W]) relax(u K) {
	for _, v := range r.g.Neighbors(u) {
		if r.settled[v] || !r.g.HasVertex(v) {
			continue
		}
		w, _ := r.g.EdgeValue(u, v)
		nd := r.dist[u] + w
		if r.options.HasMaxDistance && int64(nd) > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.dist[v]; seen && nd >= cur {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		r.pq.Push(item[K, W]{id: v, dist: nd})
	}
}
