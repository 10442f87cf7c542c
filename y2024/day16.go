package main

import (
	"github.com/gridwalk/aoc"
	"tailscale.com/util/set"
)

// turnCost is the score for a quarter turn; a step forward costs 1.
const turnCost = 1000

// isCorner reports whether p is a node of the corridor graph: the start
// and end tiles, dead ends, and any tile where a path can turn.
func isCorner(m *aoc.Maze, p aoc.Pt) bool {
	if m.HasStart && p == m.Start || m.HasEnd && p == m.End {
		return true
	}
	var open [4]bool
	walls := 0
	for _, d := range aoc.Directions {
		open[d] = m.Open(p.Move(d))
		if !open[d] {
			walls++
		}
	}
	if walls == 3 {
		return true
	}
	vertical := open[aoc.Up] || open[aoc.Down]
	horizontal := open[aoc.Left] || open[aoc.Right]
	return vertical && horizontal
}

// corridorGraph contracts the maze into a graph whose nodes are a corner
// and the heading the reindeer had on arrival. Walking a straight corridor
// from corner c1 in direction d to the next corner c2 gives, for each
// heading h at c1, an arc (c1, h) → (c2, d) costing the corridor length
// plus turnCost per quarter turn from h to d.
func corridorGraph(m *aoc.Maze) *aoc.Graph[aoc.Path] {
	var g aoc.Graph[aoc.Path]
	m.Grid.All(func(c1 aoc.Pt, c aoc.Cell) bool {
		if c == aoc.Wall || !isCorner(m, c1) {
			return true
		}
		for _, d := range aoc.Directions {
			c2, dist := c1, 0
			for {
				n := c2.Move(d)
				if !m.Open(n) {
					break
				}
				c2, dist = n, dist+1
				if isCorner(m, c2) {
					break
				}
			}
			if dist == 0 {
				continue
			}
			for _, h := range aoc.Directions {
				g.AddArc(aoc.Path{Pt: c1, Dir: h}, aoc.Path{Pt: c2, Dir: d}, h.TurnsTo(d)*turnCost+dist)
			}
		}
		return true
	})
	return &g
}

// reindeerRace returns the lowest score from the start, facing east, to
// the end in any heading, and the number of tiles on at least one path
// with that score. The score is aoc.Inf if the end cannot be reached.
func reindeerRace(m *aoc.Maze) (best, tiles int) {
	start := aoc.Path{Pt: m.Start, Dir: aoc.Right}
	g := corridorGraph(m)
	sp := g.ShortestPaths(start, aoc.SearchOpts[aoc.Path]{})

	var ends []aoc.Path
	for _, d := range aoc.Directions {
		ends = append(ends, aoc.Path{Pt: m.End, Dir: d})
	}
	_, best = sp.Nearest(ends...)
	if best == aoc.Inf {
		return best, 0
	}
	var bestEnds []aoc.Path
	for _, e := range ends {
		if sp.Dist(e) == best {
			bestEnds = append(bestEnds, e)
		}
	}

	onPath := make(set.Set[aoc.Pt])
	onPath.Add(m.Start)
	for n := range sp.OnShortestPaths(bestEnds...) {
		onPath.Add(n.Pt)
		for u := range sp.Prev(n) {
			for _, p := range u.Pt.Between(n.Pt) {
				onPath.Add(p)
			}
		}
	}
	return best, onPath.Len()
}

func (s solver) reindeerMaze() *aoc.Maze {
	m := aoc.MustGet(aoc.ParseMaze(s.Input()))
	if !m.HasStart || !m.HasEnd {
		panic("maze needs both S and E")
	}
	return m
}

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s solver) D16p1() any {
	best, _ := reindeerRace(s.reindeerMaze())
	return best
}

// want=45
func (s solver) D16p2() any {
	_, tiles := reindeerRace(s.reindeerMaze())
	return tiles
}
