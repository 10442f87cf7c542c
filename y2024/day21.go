package main

import (
	"strings"

	"github.com/gridwalk/aoc"
)

type keypad struct {
	keys map[rune]aoc.Pt
	gap  aoc.Pt
}

func newKeypad(rows ...string) keypad {
	kp := keypad{keys: map[rune]aoc.Pt{}}
	for y, row := range rows {
		for x, r := range row {
			p := aoc.Pt{X: x, Y: y}
			if r == ' ' {
				kp.gap = p
				continue
			}
			kp.keys[r] = p
		}
	}
	return kp
}

var (
	numericPad     = newKeypad("789", "456", "123", " 0A")
	directionalPad = newKeypad(" ^A", "<v>")
)

// moves returns the button presses on the directional pad above that
// take this pad's arm from key a to key b and press it. Moving left is
// done first, then vertical, then right, except where that would cross
// the gap.
func (kp keypad) moves(a, b rune) string {
	pa, pb := kp.keys[a], kp.keys[b]
	d := pb.Sub(pa)
	h := strings.Repeat(">", max(d.X, 0)) + strings.Repeat("<", max(-d.X, 0))
	v := strings.Repeat("v", max(d.Y, 0)) + strings.Repeat("^", max(-d.Y, 0))
	var seq string
	if d.X < 0 {
		if (aoc.Pt{X: pb.X, Y: pa.Y}) != kp.gap {
			seq = h + v
		} else {
			seq = v + h
		}
	} else {
		if (aoc.Pt{X: pa.X, Y: pb.Y}) != kp.gap {
			seq = v + h
		} else {
			seq = h + v
		}
	}
	return seq + "A"
}

type pressKey struct {
	from, to rune
	depth    int
}

// presser counts the human presses needed to type sequences through a
// chain of directional-pad robots, memoised on (move, depth).
type presser map[pressKey]int

// cost returns the presses needed for a robot depth levels above the
// human to move from one key to another and press it.
func (m presser) cost(from, to rune, depth int) int {
	seq := directionalPad.moves(from, to)
	if depth == 0 {
		return len(seq)
	}
	k := pressKey{from, to, depth}
	if n, ok := m[k]; ok {
		return n
	}
	n := m.seqCost(seq, depth-1)
	m[k] = n
	return n
}

func (m presser) seqCost(seq string, depth int) int {
	n := 0
	prev := 'A'
	for _, r := range seq {
		n += m.cost(prev, r, depth)
		prev = r
	}
	return n
}

// codePresses returns the human presses to enter code on the numeric
// pad through robots directional-pad robots.
func (m presser) codePresses(code string, robots int) int {
	n := 0
	prev := 'A'
	for _, r := range code {
		seq := numericPad.moves(prev, r)
		if robots == 0 {
			n += len(seq)
		} else {
			n += m.seqCost(seq, robots-1)
		}
		prev = r
	}
	return n
}

func (s solver) complexity(robots int) int {
	m := presser{}
	total := 0
	s.ForLines(func(code string) {
		if code = strings.TrimSpace(code); code == "" {
			return
		}
		total += m.codePresses(code, robots) * aoc.Int(strings.TrimSuffix(code, "A"))
	})
	return total
}

/*
want=126384

029A
980A
179A
456A
379A
*/
func (s solver) D21p1() any {
	return s.complexity(2)
}

// want=154115708116294
func (s solver) D21p2() any {
	return s.complexity(25)
}
