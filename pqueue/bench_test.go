package pqueue_test

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc/pqueue"
)

// BenchmarkQueue_PushPop measures a full fill-and-drain cycle of 10k ints.
func BenchmarkQueue_PushPop(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	vals := make([]int, 10_000)
	for i := range vals {
		vals[i] = rng.Int()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New(cmp.Compare[int])
		for _, v := range vals {
			q.Push(v)
		}
		for !q.IsEmpty() {
			q.Pop()
		}
	}
}
