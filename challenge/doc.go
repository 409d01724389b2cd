// Package challenge defines what a puzzle solution looks like and how
// solutions are identified and looked up.
//
// A Challenge pairs an ID (year + day) with two pure functions that take the
// normalised puzzle input and return the answer as a string. A Registry is an
// explicit, compile-time list of challenges; nothing is discovered at run
// time.
//
// IDs print as "YYYY-DD" and ParseID accepts "2024-06", "2024-6", "2024/6"
// and "2024/06".
//
// Errors:
//
//   - ErrBadID:     text is not a valid year/day pair.
//   - ErrDuplicate: two challenges share an ID.
//   - ErrNotFound:  no challenge registered under an ID.
//   - ErrNoInput:   a solution was given empty input.
package challenge
