// Package solutions lists every implemented puzzle day.
//
// Adding a day means writing its package under y<year>/day<dd> and adding
// its Challenge to Registry below.
package solutions

import (
	"github.com/katalvlaran/aoc/challenge"
	y2015d03 "github.com/katalvlaran/aoc/solutions/y2015/day03"
	y2015d09 "github.com/katalvlaran/aoc/solutions/y2015/day09"
	y2018d06 "github.com/katalvlaran/aoc/solutions/y2018/day06"
	y2021d15 "github.com/katalvlaran/aoc/solutions/y2021/day15"
	y2022d12 "github.com/katalvlaran/aoc/solutions/y2022/day12"
	y2024d04 "github.com/katalvlaran/aoc/solutions/y2024/day04"
	y2024d06 "github.com/katalvlaran/aoc/solutions/y2024/day06"
	y2024d10 "github.com/katalvlaran/aoc/solutions/y2024/day10"
	y2024d12 "github.com/katalvlaran/aoc/solutions/y2024/day12"
)

// Registry returns a registry of every implemented challenge.
func Registry() (*challenge.Registry, error) {
	return challenge.NewRegistry(
		y2015d03.Challenge,
		y2015d09.Challenge,
		y2018d06.Challenge,
		y2021d15.Challenge,
		y2022d12.Challenge,
		y2024d04.Challenge,
		y2024d06.Challenge,
		y2024d10.Challenge,
		y2024d12.Challenge,
	)
}
