package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/solutions/y2024/day06"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestPart1(t *testing.T) {
	got, err := day06.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, "41", got)
}

func TestPart2(t *testing.T) {
	got, err := day06.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, "6", got)
}

func TestOtherFacings(t *testing.T) {
	got, err := day06.Part1("..>..")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	// Blocked to the west, the guard turns north and walks off.
	got, err = day06.Part1("...\n#<.")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestNoGuard(t *testing.T) {
	_, err := day06.Part1("...\n.#.")
	require.ErrorIs(t, err, day06.ErrNoGuard)
}
