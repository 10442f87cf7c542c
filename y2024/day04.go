package main

import "github.com/gridwalk/aoc"

// countWord counts occurrences of word in g in all eight directions.
func countWord(g aoc.Grid[rune], word string) int {
	w := []rune(word)
	n := 0
	g.All(func(p aoc.Pt, r rune) bool {
		if r != w[0] {
			return true
		}
		(aoc.Pt{}).ForNeighbors(func(d aoc.Pt) bool {
			q := p
			for _, want := range w[1:] {
				q = q.Add(d)
				if got, ok := g.AtOk(q); !ok || got != want {
					return true
				}
			}
			n++
			return true
		})
		return true
	})
	return n
}

// countCrossMAS counts the A cells at the center of two diagonal MAS
// words.
func countCrossMAS(g aoc.Grid[rune]) int {
	isMS := func(a, b rune) bool {
		return a == 'M' && b == 'S' || a == 'S' && b == 'M'
	}
	at := func(p aoc.Pt) rune {
		r, _ := g.AtOk(p)
		return r
	}
	n := 0
	g.All(func(p aoc.Pt, r rune) bool {
		if r == 'A' &&
			isMS(at(p.Add(aoc.Pt{X: -1, Y: -1})), at(p.Add(aoc.Pt{X: 1, Y: 1}))) &&
			isMS(at(p.Add(aoc.Pt{X: 1, Y: -1})), at(p.Add(aoc.Pt{X: -1, Y: 1}))) {
			n++
		}
		return true
	})
	return n
}

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func (s solver) D4p1() any {
	return countWord(aoc.RuneGrid(s.Input()), "XMAS")
}

// want=9
func (s solver) D4p2() any {
	return countCrossMAS(aoc.RuneGrid(s.Input()))
}
