package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gridwalk/aoc"
)

func (s solver) fallingBytes() (drops []aoc.Pt, size, first int) {
	size, first = 71, 1024
	if s.SampleMode {
		size, first = 7, 12
	}
	s.ForLines(func(line string) {
		x, y, ok := strings.Cut(line, ",")
		if ok {
			drops = append(drops, aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)})
		}
	})
	return drops, size, first
}

// memorySpace is a size×size maze with the fallen bytes as walls.
func memorySpace(size int, fallen []aoc.Pt) *aoc.Maze {
	g := aoc.MakeGrid[aoc.Cell](size, size)
	g.All(func(p aoc.Pt, _ aoc.Cell) bool {
		g.Set(p, aoc.Open)
		return true
	})
	for _, b := range fallen {
		g.Set(b, aoc.Wall)
	}
	return &aoc.Maze{
		Grid:     g,
		Start:    aoc.Pt{},
		HasStart: true,
		End:      aoc.Pt{X: size - 1, Y: size - 1},
		HasEnd:   true,
	}
}

// exitSteps returns the fewest steps from the top-left to the
// bottom-right corner, or aoc.Inf if the fallen bytes cut it off.
func exitSteps(size int, fallen []aoc.Pt) int {
	m := memorySpace(size, fallen)
	sp := aoc.Dijkstra(m.Start, m.Neighbors, aoc.SearchOpts[aoc.Pt]{
		Target: func(p aoc.Pt) bool { return p == m.End },
		NoPrev: true,
	})
	return sp.Dist(m.End)
}

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func (s solver) D18p1() any {
	drops, size, first := s.fallingBytes()
	return exitSteps(size, drops[:first])
}

// want=6,1
func (s solver) D18p2() any {
	drops, size, _ := s.fallingBytes()
	n := sort.Search(len(drops)+1, func(n int) bool {
		return exitSteps(size, drops[:n]) == aoc.Inf
	})
	if n > len(drops) {
		return "never blocked"
	}
	b := drops[n-1]
	return fmt.Sprintf("%d,%d", b.X, b.Y)
}
