package main

import (
	"slices"
	"strings"

	"github.com/gridwalk/aoc"
)

func (s solver) lists() (left, right []int) {
	s.ForLines(func(line string) {
		f := strings.Fields(line)
		if len(f) != 2 {
			return
		}
		left = append(left, aoc.Int(f[0]))
		right = append(right, aoc.Int(f[1]))
	})
	return left, right
}

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	left, right := s.lists()
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total
}

// want=31
func (s solver) D1p2() any {
	left, right := s.lists()
	counts := map[int]int{}
	for _, v := range right {
		counts[v]++
	}
	score := 0
	for _, v := range left {
		score += v * counts[v]
	}
	return score
}
