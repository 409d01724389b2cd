// Package digraph provides a small generic directed graph backed by nested
// adjacency maps.
//
// The Graph G = (V, E) stores:
//
//   - vertices: key → value
//   - edges:    from → to → value
//
// Semantics:
//
//   - First write wins. AddVertex on an existing key and AddEdge on an
//     existing (from,to) pair are no-ops and report false.
//   - AddEdge does not create vertices; only the from-bucket of the
//     adjacency map is created lazily.
//   - RemoveVertex removes the vertex entry only. Edges that reference the
//     removed key stay in place and remain visible through EdgeValue,
//     IsAdjacent and Neighbors.
//   - Lookups on absent keys return the zero value and ok=false.
//   - Vertices and Neighbors return keys in insertion order.
//
// The package carries no traversal logic: BFS, DFS and Dijkstra are built on
// top of Neighbors/EdgeValue by callers (see package dijkstra).
//
// Complexity:
//
//   - AddVertex, AddEdge, VertexValue, EdgeValue, IsAdjacent: O(1) amortized.
//   - Neighbors: O(deg(v)).
//   - RemoveVertex: O(V) to keep the insertion order.
//
// A Graph is not safe for concurrent use.
package digraph
