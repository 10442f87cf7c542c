package main

import "github.com/gridwalk/aoc"

// countCheats counts the cheats that save at least threshold picoseconds.
// A cheat leaves the track at a, passes through walls for at most budget
// steps, and rejoins the track at b; its length is the Manhattan distance
// from a to b. Cheats are identified by their endpoints.
func countCheats(m *aoc.Maze, budget, threshold int) int {
	g := m.CellGraph()
	fromStart := g.ShortestPaths(m.Start, aoc.SearchOpts[aoc.Pt]{NoPrev: true})
	toEnd := g.ShortestPaths(m.End, aoc.SearchOpts[aoc.Pt]{NoPrev: true})
	base := fromStart.Dist(m.End)
	if base == aoc.Inf {
		return 0
	}
	n := 0
	fromStart.ForEach(func(a aoc.Pt, da int) {
		for dy := -budget; dy <= budget; dy++ {
			rem := budget - aoc.AbsDiff(dy, 0)
			for dx := -rem; dx <= rem; dx++ {
				b := a.Add(aoc.Pt{X: dx, Y: dy})
				db := toEnd.Dist(b)
				if db == aoc.Inf {
					continue
				}
				if base-(da+a.MDist(b)+db) >= threshold {
					n++
				}
			}
		}
	})
	return n
}

func (s solver) raceTrack() *aoc.Maze {
	m := aoc.MustGet(aoc.ParseMaze(s.Input()))
	if !m.HasStart || !m.HasEnd {
		panic("race track needs both S and E")
	}
	return m
}

/*
want=5

###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
*/
func (s solver) D20p1() any {
	threshold := 100
	if s.SampleMode {
		threshold = 20
	}
	return countCheats(s.raceTrack(), 2, threshold)
}

// want=41
func (s solver) D20p2() any {
	threshold := 100
	if s.SampleMode {
		threshold = 70
	}
	return countCheats(s.raceTrack(), 20, threshold)
}
