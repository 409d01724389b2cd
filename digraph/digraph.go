package digraph

// Graph is a directed graph with vertex values V and edge values E.
type Graph[K comparable, V, E any] struct {
	vertices map[K]V
	order    []K // vertex keys in insertion order

	// edges[from][to] = value; adj[from] keeps the to-keys in insertion order.
	edges map[K]map[K]E
	adj   map[K][]K

	edgeCount int
}

// New returns an empty graph.
func New[K comparable, V, E any]() *Graph[K, V, E] {
	return &Graph[K, V, E]{
		vertices: make(map[K]V),
		edges:    make(map[K]map[K]E),
		adj:      make(map[K][]K),
	}
}

// AddVertex stores key with value unless key is already present.
// It reports whether the vertex was inserted.
func (g *Graph[K, V, E]) AddVertex(key K, value V) bool {
	if _, ok := g.vertices[key]; ok {
		return false
	}
	g.vertices[key] = value
	g.order = append(g.order, key)

	return true
}

// HasVertex reports whether key is a vertex.
func (g *Graph[K, V, E]) HasVertex(key K) bool {
	_, ok := g.vertices[key]
	return ok
}

// VertexValue returns the value stored for key.
func (g *Graph[K, V, E]) VertexValue(key K) (V, bool) {
	v, ok := g.vertices[key]
	return v, ok
}

// RemoveVertex deletes the vertex entry for key and reports whether it existed.
// Incident edges are left untouched.
func (g *Graph[K, V, E]) RemoveVertex(key K) bool {
	if _, ok := g.vertices[key]; !ok {
		return false
	}
	delete(g.vertices, key)
	for i, k := range g.order {
		if k == key {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// AddEdge stores the edge from→to with value unless it already exists.
// It reports whether the edge was inserted.
func (g *Graph[K, V, E]) AddEdge(from, to K, value E) bool {
	bucket, ok := g.edges[from]
	if !ok {
		bucket = make(map[K]E)
		g.edges[from] = bucket
	}
	if _, exists := bucket[to]; exists {
		return false
	}
	bucket[to] = value
	g.adj[from] = append(g.adj[from], to)
	g.edgeCount++

	return true
}

// EdgeValue returns the value of the edge from→to.
func (g *Graph[K, V, E]) EdgeValue(from, to K) (E, bool) {
	e, ok := g.edges[from][to]
	return e, ok
}

// IsAdjacent reports whether the edge from→to exists.
func (g *Graph[K, V, E]) IsAdjacent(from, to K) bool {
	_, ok := g.edges[from][to]
	return ok
}

// Neighbors returns the targets of key's outgoing edges in insertion order,
// or nil when key has none. The returned slice is a copy.
func (g *Graph[K, V, E]) Neighbors(key K) []K {
	tos := g.adj[key]
	if len(tos) == 0 {
		return nil
	}
	out := make([]K, len(tos))
	copy(out, tos)

	return out
}

// Vertices returns all vertex keys in insertion order.
func (g *Graph[K, V, E]) Vertices() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph[K, V, E]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|, including edges left behind by RemoveVertex.
func (g *Graph[K, V, E]) EdgeCount() int { return g.edgeCount }
