package main

import (
	"log"
	"strings"

	"github.com/gridwalk/aoc"
)

func (s solver) warehouse(wide bool) (aoc.Grid[rune], []aoc.Direction) {
	sections := s.Sections()
	if len(sections) != 2 {
		log.Fatalf("warehouse: got %d sections, want map and moves", len(sections))
	}
	layout := sections[0]
	if wide {
		layout = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.").Replace(layout)
	}
	g := aoc.RuneGrid([]byte(layout))
	var moves []aoc.Direction
	for _, r := range sections[1] {
		if d, ok := aoc.ParseDirection(r); ok {
			moves = append(moves, d)
		}
	}
	return g, moves
}

// push moves the robot at p one step in direction d, shoving every box in
// the way. Nothing moves if any pushed cell would hit a wall. It returns
// the robot's new position.
func push(g aoc.Grid[rune], p aoc.Pt, d aoc.Direction) aoc.Pt {
	var moving []aoc.Pt
	seen := map[aoc.Pt]bool{}
	front := []aoc.Pt{p}
	for len(front) > 0 {
		var next []aoc.Pt
		for _, c := range front {
			if seen[c] {
				continue
			}
			seen[c] = true
			moving = append(moving, c)
			n := c.Move(d)
			switch g.At(n) {
			case '#':
				return p
			case 'O':
				next = append(next, n)
			case '[':
				next = append(next, n)
				if d == aoc.Up || d == aoc.Down {
					next = append(next, n.Move(aoc.Right))
				}
			case ']':
				next = append(next, n)
				if d == aoc.Up || d == aoc.Down {
					next = append(next, n.Move(aoc.Left))
				}
			}
		}
		front = next
	}
	vals := make([]rune, len(moving))
	for i, c := range moving {
		vals[i] = g.At(c)
		g.Set(c, '.')
	}
	for i, c := range moving {
		g.Set(c.Move(d), vals[i])
	}
	return p.Move(d)
}

// gpsSum runs the robot through moves and sums 100·y + x over the left
// edge of every box.
func gpsSum(g aoc.Grid[rune], moves []aoc.Direction) int {
	robot, ok := g.Find(func(r rune) bool { return r == '@' })
	if !ok {
		log.Fatal("no robot in the warehouse")
	}
	for _, d := range moves {
		robot = push(g, robot, d)
	}
	sum := 0
	g.All(func(p aoc.Pt, r rune) bool {
		if r == 'O' || r == '[' {
			sum += 100*p.Y + p.X
		}
		return true
	})
	return sum
}

/*
want=2028

########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
*/
func (s solver) D15p1() any {
	return gpsSum(s.warehouse(false))
}

/*
want=618

#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^
*/
func (s solver) D15p2() any {
	return gpsSum(s.warehouse(true))
}
