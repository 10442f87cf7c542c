package main

import "github.com/gridwalk/aoc"

// trailGraph joins every cell to each 4-neighbour exactly one higher.
func trailGraph(g aoc.Grid[int]) *aoc.Graph[aoc.Pt] {
	var gr aoc.Graph[aoc.Pt]
	g.All(func(p aoc.Pt, h int) bool {
		gr.AddNode(p)
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if nh, ok := g.AtOk(n); ok && nh == h+1 {
				gr.AddArc(p, n, 1)
			}
			return true
		})
		return true
	})
	return &gr
}

func (s solver) topoMap() aoc.Grid[int] {
	return aoc.MustGet(aoc.ParseGrid(s.Input(), func(r rune) (int, error) {
		if r == '.' {
			return -10, nil // impassable in the worked examples
		}
		return aoc.Digit(r), nil
	}))
}

// trailheads calls f for every height-0 cell with the path counts from it
// to every cell it can reach.
func trailheads(g aoc.Grid[int], f func(counts map[aoc.Pt]int)) {
	gr := trailGraph(g)
	g.All(func(p aoc.Pt, h int) bool {
		if h == 0 {
			f(gr.CountPathsDAG(p))
		}
		return true
	})
}

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	g := s.topoMap()
	score := 0
	trailheads(g, func(counts map[aoc.Pt]int) {
		for p := range counts {
			if g.At(p) == 9 {
				score++
			}
		}
	})
	return score
}

// want=81
func (s solver) D10p2() any {
	g := s.topoMap()
	rating := 0
	trailheads(g, func(counts map[aoc.Pt]int) {
		for p, n := range counts {
			if g.At(p) == 9 {
				rating += n
			}
		}
	})
	return rating
}
