// Package grid provides a dense, fixed-size 2D grid of comparable cell values
// together with lazy point iterators for the usual puzzle traversals.
//
// What:
//
//   - Grid[V] stores Width×Height cells in row-major order:
//     index = y*Width + x, and PointFromIndex(index) = (index%Width, index/Width).
//   - Cells are read and written by point.Point; out-of-bounds access is an
//     error (Value, Set), a panic (At) or a miss (Lookup).
//   - Iterators are iter.Seq values: lazy, finite and restartable. Ranging
//     over the same sequence twice walks the points twice.
//   - FloodFill, Components and ToGraph treat the grid as a graph whose
//     vertices are cells and whose edges join 4- or 8-neighbours.
//
// Iterators:
//
//   - RectPoints:     sub-rectangle, row-major.
//   - EdgePoints:     outer boundary, every point once.
//   - LinePoints:     ray from an origin until it leaves the grid.
//   - CardinalLine:   inclusive segment between two axis-aligned points.
//   - AdjacentPoints: up to 8 (or 4) neighbours, optionally out of bounds.
//   - Points:         all points in Down, Up, Right or Left order.
//   - PointsInRow, PointsInColumn.
//   - FloodFill:      BFS over neighbours whose values compare equal.
//
// Complexity:
//
//   - Value, Set, At, Lookup, Index, PointFromIndex: O(1).
//   - FloodFill, Components: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//   - ToGraph: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid:      zero or negative dimensions, no rows or an empty row.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds:    coordinate outside [0,Width)×[0,Height).
//   - ErrZeroSlope:      LinePoints with slope (0,0).
//   - ErrNotAxisAligned: CardinalLine endpoints share neither row nor column.
package grid
