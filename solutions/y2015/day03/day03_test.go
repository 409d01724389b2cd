package day03_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/solutions/y2015/day03"
)

func TestPart1(t *testing.T) {
	cases := map[string]string{
		">":          "2",
		"^>v<":       "4",
		"^v^v^v^v^v": "2",
	}
	for in, want := range cases {
		got, err := day03.Part1(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestPart2(t *testing.T) {
	cases := map[string]string{
		"^v":         "3",
		"^>v<":       "3",
		"^v^v^v^v^v": "11",
	}
	for in, want := range cases {
		got, err := day03.Part2(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestErrors(t *testing.T) {
	_, err := day03.Part1("^x")
	require.ErrorIs(t, err, day03.ErrBadMove)

	_, err = day03.Part2("\n")
	require.ErrorIs(t, err, challenge.ErrNoInput)
}
