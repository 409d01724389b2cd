// Package aoc is a collection of Advent of Code solutions built on a small
// toolkit for grid and graph puzzles.
//
// What is in here?
//
//	The toolkit, usable on its own:
//		• point     – integer 2D points and vectors: translate, rotate, Manhattan distance
//		• grid      – dense row-major Grid[V] with lazy iterators, flood fill and components
//		• digraph   – DirectedGraph[K,V,E] with keyed vertices and valued edges
//		• pqueue    – binary-heap PriorityQueue[T] ordered by a comparator
//		• dijkstra  – shortest paths over a digraph, built on pqueue
//
//	The puzzles:
//		• challenge – the Challenge contract (two pure Part functions) and IDs
//		• solutions – the registry of every implemented day, one package per day
//
//	The harness:
//		• cmd/aoc   – `aoc solve`, `aoc list`, `aoc info`
//
// Quick ASCII example, a 4×3 grid with its row-major indices:
//
//	    x→ 0  1  2  3
//	  y 0  0  1  2  3
//	  ↓ 1  4  5  6  7
//	    2  8  9 10 11
//
// Point (x,y) lives at index y*width+x; y grows downwards, so point.Up is (0,-1).
//
//	go install github.com/katalvlaran/aoc/cmd/aoc@latest
package aoc
