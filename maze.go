package aoc

import (
	"errors"
	"fmt"
)

// ErrUnknownCell is returned by ParseMaze for characters other than
// '#', '.', 'S' and 'E'.
var ErrUnknownCell = errors.New("unknown cell")

// Cell is a single maze tile.
type Cell byte

const (
	Wall Cell = iota
	Open
	Start
	End
)

// ParseCell maps a maze character to its Cell.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case '#':
		return Wall, nil
	case '.':
		return Open, nil
	case 'S':
		return Start, nil
	case 'E':
		return End, nil
	}
	return 0, fmt.Errorf("%q: %w", r, ErrUnknownCell)
}

func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	}
	return '.'
}

// Maze is a walled grid with optional start and end tiles.
type Maze struct {
	Grid Grid[Cell]

	Start, End       Pt
	HasStart, HasEnd bool
}

// ParseMaze parses one row per line. If several S or E tiles are present
// the last one in row-major order wins.
func ParseMaze(input []byte) (*Maze, error) {
	g, err := ParseGrid(input, ParseCell)
	if err != nil {
		return nil, fmt.Errorf("parsing maze: %w", err)
	}
	m := &Maze{Grid: g}
	g.All(func(p Pt, c Cell) bool {
		switch c {
		case Start:
			m.Start, m.HasStart = p, true
		case End:
			m.End, m.HasEnd = p, true
		}
		return true
	})
	return m, nil
}

// String renders the maze in the text form ParseMaze accepts.
func (m *Maze) String() string {
	return m.Grid.Format(Cell.Rune)
}

// Open reports whether p is inside the maze and not a wall.
func (m *Maze) Open(p Pt) bool {
	c, ok := m.Grid.AtOk(p)
	return ok && c != Wall
}

// Neighbors yields the open 4-neighbours of p at cost 1. It walks the
// same arcs as CellGraph without building the graph.
func (m *Maze) Neighbors(p Pt, yield func(next Pt, cost int) bool) {
	for _, d := range Directions {
		if n := p.Move(d); m.Open(n) && !yield(n, 1) {
			return
		}
	}
}

// CellGraph returns the graph with one node per open tile and a weight-1
// arc between every pair of 4-adjacent open tiles, in both directions.
func (m *Maze) CellGraph() *Graph[Pt] {
	var g Graph[Pt]
	m.Grid.All(func(p Pt, c Cell) bool {
		if c == Wall {
			return true
		}
		g.AddNode(p)
		for _, d := range []Direction{Right, Down} {
			if n := p.Move(d); m.Open(n) {
				g.AddEdge(p, n, 1)
			}
		}
		return true
	})
	return &g
}
