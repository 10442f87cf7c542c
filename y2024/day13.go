package main

import (
	"regexp"

	"github.com/gridwalk/aoc"
)

var numRx = regexp.MustCompile(`-?\d+`)

type clawMachine struct {
	a, b, prize aoc.Pt
}

func (s solver) clawMachines() []clawMachine {
	var out []clawMachine
	for _, sec := range s.Sections() {
		n := aoc.Ints(numRx.FindAllString(sec, -1)...)
		if len(n) != 6 {
			continue
		}
		out = append(out, clawMachine{
			a:     aoc.Pt{X: n[0], Y: n[1]},
			b:     aoc.Pt{X: n[2], Y: n[3]},
			prize: aoc.Pt{X: n[4], Y: n[5]},
		})
	}
	return out
}

// presses solves a·A + b·B = prize with Cramer's rule. It reports false
// when the buttons are parallel or the solution is not a non-negative
// whole number of presses.
func (m clawMachine) presses() (a, b int, ok bool) {
	det := m.a.X*m.b.Y - m.a.Y*m.b.X
	if det == 0 {
		return 0, 0, false
	}
	an := m.prize.X*m.b.Y - m.prize.Y*m.b.X
	bn := m.a.X*m.prize.Y - m.a.Y*m.prize.X
	if an%det != 0 || bn%det != 0 {
		return 0, 0, false
	}
	a, b = an/det, bn/det
	return a, b, a >= 0 && b >= 0
}

func tokens(machines []clawMachine, offset, maxPresses int) int {
	total := 0
	for _, m := range machines {
		m.prize = m.prize.Add(aoc.Pt{X: offset, Y: offset})
		a, b, ok := m.presses()
		if !ok || maxPresses > 0 && (a > maxPresses || b > maxPresses) {
			continue
		}
		total += 3*a + b
	}
	return total
}

/*
want=480

Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
*/
func (s solver) D13p1() any {
	return tokens(s.clawMachines(), 0, 100)
}

// want=875318608908
func (s solver) D13p2() any {
	return tokens(s.clawMachines(), 10_000_000_000_000, 0)
}
