package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

var (
	// ErrEmptyGrid is returned when parsing input with no rows.
	ErrEmptyGrid = errors.New("empty grid")
	// ErrRaggedGrid is returned when rows differ in length.
	ErrRaggedGrid = errors.New("rows differ in length")
)

// Grid is a rectangular array of cells indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// InBounds reports whether p lies inside g.
func (g Grid[T]) InBounds(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid parses one row per line of input, converting each rune with
// cell. Trailing blank lines are ignored.
func ParseGrid[T any](input []byte, cell func(rune) (T, error)) (Grid[T], error) {
	lines := strings.Split(strings.TrimRight(string(input), "\r\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]T, 0, len(line))
		for x, r := range line {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			row = append(row, v)
		}
		if y > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), len(g[0]), ErrRaggedGrid)
		}
		g = append(g, row)
	}
	return g, nil
}

// RuneGrid parses input as a grid of its raw runes.
func RuneGrid(input []byte) Grid[rune] {
	return MustGet(ParseGrid(input, func(r rune) (rune, error) { return r, nil }))
}

// Format renders g one row per line using char.
func (g Grid[T]) Format(char func(T) rune) string {
	var buf bytes.Buffer
	for y, row := range g {
		if y > 0 {
			buf.WriteByte('\n')
		}
		for _, v := range row {
			buf.WriteRune(char(v))
		}
	}
	return buf.String()
}

func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// All calls f for every cell in row-major order until f returns false.
func (g Grid[T]) All(f func(p Pt, v T) (keepGoing bool)) {
	for y, row := range g {
		for x, v := range row {
			if !f(Pt{x, y}, v) {
				return
			}
		}
	}
}

// Find returns the first cell, in row-major order, matching pred.
func (g Grid[T]) Find(pred func(T) bool) (Pt, bool) {
	var (
		at    Pt
		found bool
	)
	g.All(func(p Pt, v T) bool {
		if pred(v) {
			at, found = p, true
			return false
		}
		return true
	})
	return at, found
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a digest of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
	return out
}

func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[size.X-1-x][y] = g[y][x]
		}
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ToGraph builds the cell graph reachable from start: every allowed cell
// is a node and neighbouring allowed cells are joined by weight-1 arcs in
// both directions. If allowDiagonals is true, diagonal neighbors are
// included. Cells for which disallowed returns true are left out.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	seen := map[Pt]bool{start: true}
	q := NewQueue(start)
	q.While(func(p1 Pt) bool {
		g.AddNode(p1)
		fn(p1, func(p2 Pt) bool {
			if v, ok := grid.AtOk(p2); !ok || disallowed(v) {
				return true
			}
			g.AddEdge(p1, p2, 1)
			if !seen[p2] {
				seen[p2] = true
				q.Push(p2)
			}
			return true
		})
		return true
	})
	return g
}

// Region returns the 4-connected cells around start that hold the same
// value as start.
func Region[T comparable](grid Grid[T], start Pt) []Pt {
	want := grid.At(start)
	seen := map[Pt]bool{start: true}
	out := []Pt{start}
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(n Pt) bool {
			if v, ok := grid.AtOk(n); ok && v == want && !seen[n] {
				seen[n] = true
				out = append(out, n)
				q.Push(n)
			}
			return true
		})
		return true
	})
	return out
}

// Regions partitions the grid into its 4-connected same-value regions.
func Regions[T comparable](grid Grid[T]) [][]Pt {
	done := MakeGrid[bool](grid.Size().X, grid.Size().Y)
	var out [][]Pt
	grid.All(func(p Pt, _ T) bool {
		if done.At(p) {
			return true
		}
		r := Region(grid, p)
		for _, q := range r {
			done.Set(q, true)
		}
		out = append(out, r)
		return true
	})
	return out
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell along its direction. It reports false when the
// step leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Move(p.Dir)
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnsTo returns how many quarter turns it takes to face o from d.
func (d Direction) TurnsTo(o Direction) int {
	switch (o - d + 4) % 4 {
	case 0:
		return 0
	case 2:
		return 2
	}
	return 1
}

// Delta is the unit step for d, with Y growing downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// ParseDirection maps one of ^ > v < to its Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + o.X, p.Y + o.Y}
}

func (p Pt2[T]) Sub(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - o.X, p.Y - o.Y}
}

func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

// Move returns the neighbor of p in direction d.
func (p Pt2[T]) Move(d Direction) Pt2[T] {
	dd := d.Delta()
	return Pt2[T]{p.X + T(dd.X), p.Y + T(dd.Y)}
}

// DirectionTo returns the direction from p to o. The points must share a
// row or a column.
func (p Pt2[T]) DirectionTo(o Pt2[T]) Direction {
	switch {
	case p.X == o.X && p.Y > o.Y:
		return Up
	case p.X == o.X && p.Y < o.Y:
		return Down
	case p.Y == o.Y && p.X > o.X:
		return Left
	case p.Y == o.Y && p.X < o.X:
		return Right
	}
	panic(fmt.Sprintf("%v and %v are not axis-aligned", p, o))
}

// Between returns the cells strictly between p and o, which must share a
// row or a column.
func (p Pt2[T]) Between(o Pt2[T]) []Pt2[T] {
	if p == o {
		return nil
	}
	d := p.DirectionTo(o)
	var out []Pt2[T]
	for c := p.Move(d); c != o; c = c.Move(d) {
		out = append(out, c)
	}
	return out
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt wraps p onto a torus of the given size.
func StandardizePt(p, size Pt) Pt {
	p.X %= size.X
	p.Y %= size.Y
	if p.X < 0 {
		p.X += size.X
	}
	if p.Y < 0 {
		p.Y += size.Y
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
