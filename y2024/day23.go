package main

import (
	"slices"
	"strings"

	"github.com/gridwalk/aoc"
)

func (s solver) lanGraph() *aoc.Graph[string] {
	var g aoc.Graph[string]
	s.ForLines(func(line string) {
		if a, b, ok := strings.Cut(line, "-"); ok {
			g.AddEdge(a, b, 1)
		}
	})
	return &g
}

/*
want=7

kh-tc
qp-kh
de-cg
ka-co
yn-aq
qp-ub
cg-tb
vc-aq
tb-ka
wh-tc
yn-cg
kh-ub
ta-co
de-co
tc-td
tb-wq
wh-td
ta-ka
td-qp
aq-cg
wq-ub
ub-vc
de-ta
wq-aq
wq-vc
wh-yn
ka-de
kh-ta
co-tc
wh-qp
tb-vc
td-yn
*/
func (s solver) D23p1() any {
	n := 0
	for _, tri := range s.lanGraph().Triangles() {
		if slices.ContainsFunc(tri[:], func(c string) bool { return strings.HasPrefix(c, "t") }) {
			n++
		}
	}
	return n
}

// want=co,de,ka,ta
func (s solver) D23p2() any {
	party := s.lanGraph().MaxClique()
	slices.Sort(party)
	return strings.Join(party, ",")
}
