package pqueue_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/aoc/pqueue"
)

func ExampleQueue() {
	q := pqueue.New(cmp.Compare[int])
	for _, v := range []int{3, 1, 2} {
		q.Push(v)
	}
	for !q.IsEmpty() {
		v, _ := q.Pop()
		fmt.Print(v, ";")
	}
	fmt.Println()

	// Output:
	// 1;2;3;
}
