package main

import (
	"strings"

	"github.com/gridwalk/aoc"
)

type equation struct {
	target int
	nums   []int
}

func (s solver) equations() []equation {
	var out []equation
	s.ForLines(func(line string) {
		t, rest, ok := strings.Cut(line, ":")
		if !ok {
			return
		}
		out = append(out, equation{aoc.Int(t), aoc.Ints(strings.Fields(rest)...)})
	})
	return out
}

// solvable reports whether some left-to-right combination of + and *
// (and digit concatenation, if concat is set) turns e.nums into e.target.
func (e equation) solvable(concat bool) bool {
	var try func(acc int, rest []int) bool
	try = func(acc int, rest []int) bool {
		if acc > e.target {
			return false
		}
		if len(rest) == 0 {
			return acc == e.target
		}
		x := rest[0]
		return try(acc+x, rest[1:]) ||
			try(acc*x, rest[1:]) ||
			concat && try(acc*aoc.Pow10(aoc.NumDigits(x))+x, rest[1:])
	}
	if len(e.nums) == 0 {
		return false
	}
	return try(e.nums[0], e.nums[1:])
}

func (s solver) calibration(concat bool) int {
	sum := 0
	for _, e := range s.equations() {
		if e.solvable(concat) {
			sum += e.target
		}
	}
	return sum
}

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func (s solver) D7p1() any {
	return s.calibration(false)
}

// want=11387
func (s solver) D7p2() any {
	return s.calibration(true)
}
