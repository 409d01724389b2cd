// Package pqueue implements a binary-heap priority queue with an injected
// comparator.
//
// The comparator follows the cmp.Compare convention: negative when a sorts
// before b. The element that sorts first is always at the root and is the
// next one returned by Pop; invert the comparator for max-heap behaviour.
//
// Complexity:
//
//   - Push, Pop: O(log n).
//   - Peek, Len, IsEmpty: O(1).
//
// A Queue is not safe for concurrent use.
package pqueue
