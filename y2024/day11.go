package main

import (
	"strings"

	"github.com/gridwalk/aoc"
)

type stoneKey struct{ stone, blinks int }

// stoneCounter counts the stones a single stone turns into, memoised on
// (stone, blinks).
type stoneCounter map[stoneKey]int

func (m stoneCounter) count(stone, blinks int) int {
	if blinks == 0 {
		return 1
	}
	k := stoneKey{stone, blinks}
	if v, ok := m[k]; ok {
		return v
	}
	var n int
	switch d := aoc.NumDigits(stone); {
	case stone == 0:
		n = m.count(1, blinks-1)
	case d%2 == 0:
		half := aoc.Pow10(d / 2)
		n = m.count(stone/half, blinks-1) + m.count(stone%half, blinks-1)
	default:
		n = m.count(stone*2024, blinks-1)
	}
	m[k] = n
	return n
}

func (s solver) blink(times int) int {
	m := stoneCounter{}
	total := 0
	for _, v := range aoc.Ints(strings.Fields(string(s.Input()))...) {
		total += m.count(v, times)
	}
	return total
}

/*
want=55312

125 17
*/
func (s solver) D11p1() any {
	return s.blink(25)
}

// want=65601038650482
func (s solver) D11p2() any {
	return s.blink(75)
}
