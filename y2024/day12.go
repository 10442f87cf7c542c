package main

import (
	"github.com/gridwalk/aoc"
	"tailscale.com/util/set"
)

func cellSet(cells []aoc.Pt) set.Set[aoc.Pt] {
	s := make(set.Set[aoc.Pt], len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// perimeter counts the region edges that face a different plant or the
// map border.
func perimeter(region []aoc.Pt) int {
	in := cellSet(region)
	n := 0
	for _, p := range region {
		p.ForImmediateNeighbors(func(q aoc.Pt) bool {
			if !in.Contains(q) {
				n++
			}
			return true
		})
	}
	return n
}

// sides counts the straight fence runs around region. A polygon has as
// many sides as corners, so each cell's convex and concave corners are
// counted instead.
func sides(region []aoc.Pt) int {
	in := cellSet(region)
	n := 0
	for _, p := range region {
		for _, d := range aoc.Directions {
			a := p.Move(d)
			b := p.Move(d.Turn(true))
			diag := a.Move(d.Turn(true))
			switch {
			case !in.Contains(a) && !in.Contains(b):
				n++
			case in.Contains(a) && in.Contains(b) && !in.Contains(diag):
				n++
			}
		}
	}
	return n
}

func (s solver) fencePrice(cost func([]aoc.Pt) int) int {
	g := aoc.RuneGrid(s.Input())
	total := 0
	for _, r := range aoc.Regions(g) {
		total += len(r) * cost(r)
	}
	return total
}

/*
want=1930

RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
*/
func (s solver) D12p1() any {
	return s.fencePrice(perimeter)
}

// want=1206
func (s solver) D12p2() any {
	return s.fencePrice(sides)
}
