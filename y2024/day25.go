package main

import (
	"strings"

	"github.com/gridwalk/aoc"
)

// pinHeights returns the number of '#' in each column of a schematic,
// not counting the solid top or bottom row.
func pinHeights(schematic aoc.Grid[rune]) []int {
	var out []int
	for _, col := range schematic.Transpose() {
		out = append(out, strings.Count(string(col), "#")-1)
	}
	return out
}

func (s solver) schematics() (locks, keys [][]int, height int) {
	for _, sec := range s.Sections() {
		g := aoc.RuneGrid([]byte(sec))
		height = len(g) - 2
		if strings.Trim(string(g[0]), "#") == "" {
			locks = append(locks, pinHeights(g))
		} else {
			keys = append(keys, pinHeights(g))
		}
	}
	return locks, keys, height
}

func fits(lock, key []int, height int) bool {
	for i := range lock {
		if lock[i]+key[i] > height {
			return false
		}
	}
	return true
}

/*
want=3

#####
.####
.####
.####
.#.#.
.#...
.....

#####
##.##
.#.##
...##
...#.
...#.
.....

.....
#....
#....
#...#
#.#.#
#.###
#####

.....
.....
#.#..
###..
###.#
###.#
#####

.....
.....
.....
#....
#.#..
#.#.#
#####
*/
func (s solver) D25p1() any {
	locks, keys, height := s.schematics()
	n := 0
	for _, l := range locks {
		for _, k := range keys {
			if fits(l, k, height) {
				n++
			}
		}
	}
	return n
}
