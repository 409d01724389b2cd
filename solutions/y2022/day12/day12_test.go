package day12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/solutions/y2022/day12"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func TestPart1(t *testing.T) {
	got, err := day12.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, "31", got)
}

func TestPart2(t *testing.T) {
	got, err := day12.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, "29", got)
}

func TestErrors(t *testing.T) {
	_, err := day12.Part1("")
	require.ErrorIs(t, err, challenge.ErrNoInput)

	_, err = day12.Part1("Sabc")
	require.ErrorIs(t, err, day12.ErrNoMarker)

	// A cliff from c straight to z.
	_, err = day12.Part1("SacE")
	require.ErrorIs(t, err, day12.ErrNoPath)
}
