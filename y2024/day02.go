package main

import (
	"slices"
	"strings"

	"github.com/gridwalk/aoc"
)

func (s solver) reports() [][]int {
	var out [][]int
	s.ForLines(func(line string) {
		if line != "" {
			out = append(out, aoc.Ints(strings.Fields(line)...))
		}
	})
	return out
}

// safeReport reports whether levels is strictly increasing or strictly
// decreasing with every step between 1 and 3.
func safeReport(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	inc := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !inc {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// dampenedSafe reports whether levels is safe with at most one level
// removed.
func dampenedSafe(levels []int) bool {
	if safeReport(levels) {
		return true
	}
	for i := range levels {
		if safeReport(slices.Delete(slices.Clone(levels), i, i+1)) {
			return true
		}
	}
	return false
}

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	n := 0
	for _, r := range s.reports() {
		if safeReport(r) {
			n++
		}
	}
	return n
}

// want=4
func (s solver) D2p2() any {
	n := 0
	for _, r := range s.reports() {
		if dampenedSafe(r) {
			n++
		}
	}
	return n
}
