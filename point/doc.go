// Package point provides a small integer 2D point/vector type used across the
// grid and puzzle packages.
//
// What:
//
//   - Point is a plain value type {X, Y}; == is structural equality, so points
//     are usable directly as map keys.
//   - Translate and Rotate mutate in place; Add, Sub, Scale and Neg return copies.
//   - Up, Down, Left and Right are screen-space vectors: Y grows downward, the
//     way puzzle grids are read.
//
// Rotation:
//
//   - CW  maps (x,y) → (y,−x) around the origin.
//   - CCW maps (x,y) → (−y,x) around the origin.
//
// Because Y grows downward on screen, a right turn on a grid is a CCW rotation
// of the direction vector.
//
// Errors:
//
//   - ErrBadFormat: FromString could not parse "x,y".
package point
