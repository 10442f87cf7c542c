package main

import (
	"github.com/gridwalk/aoc"
	"tailscale.com/util/set"
)

// antinodes returns the cells in line with two same-frequency antennas.
// Without harmonics only the cell one antenna-spacing beyond each antenna
// counts; with them every in-bounds cell along the line does.
func antinodes(g aoc.Grid[rune], harmonics bool) set.Set[aoc.Pt] {
	byFreq := map[rune][]aoc.Pt{}
	g.All(func(p aoc.Pt, r rune) bool {
		if r != '.' {
			byFreq[r] = append(byFreq[r], p)
		}
		return true
	})
	out := make(set.Set[aoc.Pt])
	for _, ants := range byFreq {
		for _, a := range ants {
			for _, b := range ants {
				if a == b {
					continue
				}
				step := a.Sub(b)
				if !harmonics {
					if p := a.Add(step); g.InBounds(p) {
						out.Add(p)
					}
					continue
				}
				for p := a; g.InBounds(p); p = p.Add(step) {
					out.Add(p)
				}
			}
		}
	}
	return out
}

/*
want=14

............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func (s solver) D8p1() any {
	return antinodes(aoc.RuneGrid(s.Input()), false).Len()
}

// want=34
func (s solver) D8p2() any {
	return antinodes(aoc.RuneGrid(s.Input()), true).Len()
}
