// Package dijkstra computes single-source shortest paths over a
// digraph.Graph with non-negative integer edge weights.
//
// The digraph package deliberately carries no traversal logic; this package
// is one such traversal built on its primitives (Vertices, Neighbors,
// EdgeValue) and on pqueue for the frontier.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once.
//   - Each successful relaxation pushes one heap entry ("lazy decrease-key").
//   - Space: O(V + E) for distances, predecessors and stale heap entries.
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d are not explored.
//   - WithReturnPath():   keep predecessors so Result.Path works.
//
// Errors (sentinel):
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrVertexNotFound if the source is not a vertex of the graph.
//   - ErrNegativeWeight if any edge weight is negative.
//   - ErrBadMaxDistance if WithMaxDistance is given a negative value.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	d, ok := res.Distance("C")
//	path := res.Path("C")
package dijkstra
