package main

import (
	"github.com/dhconnelly/rtreego"
	"github.com/gridwalk/aoc"
	"tailscale.com/util/deephash"
	"tailscale.com/util/set"
)

type robot struct {
	p, v aoc.Pt
}

func (s solver) robots() ([]robot, aoc.Pt) {
	size := aoc.Pt{X: 101, Y: 103}
	if s.SampleMode {
		size = aoc.Pt{X: 11, Y: 7}
	}
	var out []robot
	s.ForLines(func(line string) {
		n := aoc.Ints(numRx.FindAllString(line, -1)...)
		if len(n) != 4 {
			return
		}
		out = append(out, robot{aoc.Pt{X: n[0], Y: n[1]}, aoc.Pt{X: n[2], Y: n[3]}})
	})
	return out, size
}

// positionsAt returns where every robot is after t seconds on a torus of
// the given size.
func positionsAt(robots []robot, size aoc.Pt, t int) []aoc.Pt {
	out := make([]aoc.Pt, len(robots))
	for i, r := range robots {
		out[i] = aoc.StandardizePt(r.p.Add(r.v.Scale(t)), size)
	}
	return out
}

// safetyFactor multiplies the robot counts of the four quadrants, leaving
// out robots on the middle row and column.
func safetyFactor(pos []aoc.Pt, size aoc.Pt) int {
	var quads [4]int
	mid := aoc.Pt{X: size.X / 2, Y: size.Y / 2}
	for _, p := range pos {
		if p.X == mid.X || p.Y == mid.Y {
			continue
		}
		q := 0
		if p.X > mid.X {
			q++
		}
		if p.Y > mid.Y {
			q += 2
		}
		quads[q]++
	}
	return quads[0] * quads[1] * quads[2] * quads[3]
}

type robotCell struct {
	p  aoc.Pt
	bb rtreego.Rect
}

func (c *robotCell) Bounds() rtreego.Rect { return c.bb }

// crowded counts the robots that share a cell with, or touch, another
// robot.
func crowded(pos []aoc.Pt) int {
	tree := rtreego.NewTree(2, 25, 50)
	cells := make([]*robotCell, len(pos))
	for i, p := range pos {
		cells[i] = &robotCell{
			p:  p,
			bb: aoc.MustGet(rtreego.NewRect(rtreego.Point{float64(p.X) + 0.25, float64(p.Y) + 0.25}, []float64{0.5, 0.5})),
		}
		tree.Insert(cells[i])
	}
	n := 0
	for _, c := range cells {
		around := aoc.MustGet(rtreego.NewRect(rtreego.Point{float64(c.p.X) - 0.9, float64(c.p.Y) - 0.9}, []float64{2.8, 2.8}))
		if len(tree.SearchIntersect(around)) > 1 {
			n++
		}
	}
	return n
}

func layoutHash(pos []aoc.Pt, size aoc.Pt) deephash.Sum {
	g := aoc.MakeGrid[bool](size.X, size.Y)
	for _, p := range pos {
		g.Set(p, true)
	}
	return g.Hash()
}

// treeSecond returns the first second at which the most robots are
// bunched together. Positions repeat after LCM(width, height) seconds, and
// the search also stops if a layout is seen twice.
func treeSecond(robots []robot, size aoc.Pt, logf func(string, ...any)) int {
	seen := make(set.Set[deephash.Sum])
	best, bestT := -1, 0
	for t := 0; t < aoc.LCM(size.X, size.Y); t++ {
		pos := positionsAt(robots, size, t)
		h := layoutHash(pos, size)
		if seen.Contains(h) {
			logf("layout at %ds repeats an earlier one", t)
			break
		}
		seen.Add(h)
		if n := crowded(pos); n > best {
			best, bestT = n, t
		}
	}
	return bestT
}

/*
want=12

p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
*/
func (s solver) D14p1() any {
	robots, size := s.robots()
	return safetyFactor(positionsAt(robots, size, 100), size)
}

func (s solver) D14p2() any {
	robots, size := s.robots()
	return treeSecond(robots, size, s.Logf)
}
