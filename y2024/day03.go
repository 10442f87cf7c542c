package main

import (
	"regexp"

	"github.com/gridwalk/aoc"
)

var mulRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// sumMuls adds up the products of every mul(X,Y) instruction in program.
// With conditionals, don't() disables later instructions until the next
// do().
func sumMuls(program string, conditionals bool) int {
	enabled := true
	sum := 0
	for _, m := range mulRx.FindAllStringSubmatch(program, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !conditionals {
				sum += aoc.Int(m[1]) * aoc.Int(m[2])
			}
		}
	}
	return sum
}

/*
want=161

xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func (s solver) D3p1() any {
	return sumMuls(string(s.Input()), false)
}

/*
want=48

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func (s solver) D3p2() any {
	return sumMuls(string(s.Input()), true)
}
