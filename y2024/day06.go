package main

import (
	"log"

	"github.com/gridwalk/aoc"
	"tailscale.com/util/set"
)

// patrol walks the guard from start, turning right at every '#', until
// they leave the map or repeat a position and heading. It returns the
// cells visited and whether the walk loops.
func patrol(g aoc.Grid[rune], start aoc.Pt) (visited set.Set[aoc.Pt], loops bool) {
	visited = make(set.Set[aoc.Pt])
	seen := make(set.Set[aoc.Path])
	cur := aoc.Path{Pt: start, Dir: aoc.Up}
	for {
		if seen.Contains(cur) {
			return visited, true
		}
		seen.Add(cur)
		visited.Add(cur.Pt)
		next, ok := g.Move(cur)
		if !ok {
			return visited, false
		}
		if g.At(next.Pt) == '#' {
			cur.Dir = cur.Dir.Turn(true)
			continue
		}
		cur = next
	}
}

func (s solver) guardMap() (aoc.Grid[rune], aoc.Pt) {
	g := aoc.RuneGrid(s.Input())
	start, ok := g.Find(func(r rune) bool { return r == '^' })
	if !ok {
		log.Fatal("no guard on the map")
	}
	return g, start
}

/*
want=41

....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
*/
func (s solver) D6p1() any {
	g, start := s.guardMap()
	visited, _ := patrol(g, start)
	return visited.Len()
}

// want=6
func (s solver) D6p2() any {
	g, start := s.guardMap()
	path, _ := patrol(g, start)
	n := 0
	for p := range path {
		if p == start {
			continue
		}
		old := g.At(p)
		g.Set(p, '#')
		if _, loops := patrol(g, start); loops {
			n++
		}
		g.Set(p, old)
	}
	return n
}
