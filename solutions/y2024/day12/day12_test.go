package day12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/solutions/y2024/day12"
)

const (
	small = `AAAA
BBCD
BBCC
EEEC`

	nested = `OOOOO
OXOXO
OOOOO
OXOXO
OOOOO`

	eShape = `EEEEE
EXXXX
EEEEE
EXXXX
EEEEE`

	diagonal = `AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA`

	large = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE`
)

func TestPart1(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"small", small, "140"},
		{"nested", nested, "772"},
		{"large", large, "1930"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := day12.Part1(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPart2(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"small", small, "80"},
		{"nested", nested, "436"},
		{"e-shape", eShape, "236"},
		{"diagonal", diagonal, "368"},
		{"large", large, "1206"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := day12.Part2(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEmpty(t *testing.T) {
	_, err := day12.Part1("")
	require.ErrorIs(t, err, challenge.ErrNoInput)
}
