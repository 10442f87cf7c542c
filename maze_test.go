package aoc

import (
	"errors"
	"strings"
	"testing"
)

const smallMaze = `#####
#S..#
#.#.#
#..E#
#####
`

func TestParseMazeRoundTrip(t *testing.T) {
	for _, in := range []string{smallMaze, "#.\n.#\n", "S\n"} {
		m, err := ParseMaze([]byte(in))
		if err != nil {
			t.Fatalf("ParseMaze(%q): %v", in, err)
		}
		if got, want := m.String(), strings.TrimRight(in, "\n"); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestParseMaze(t *testing.T) {
	m, err := ParseMaze([]byte(smallMaze))
	if err != nil {
		t.Fatal(err)
	}
	if !m.HasStart || m.Start != (Pt{1, 1}) {
		t.Errorf("Start = %v/%v, want (1,1)", m.Start, m.HasStart)
	}
	if !m.HasEnd || m.End != (Pt{3, 3}) {
		t.Errorf("End = %v/%v, want (3,3)", m.End, m.HasEnd)
	}
	if m.Open(Pt{2, 2}) || !m.Open(Pt{1, 2}) || m.Open(Pt{-1, 0}) {
		t.Errorf("Open reports the wrong tiles")
	}

	g := m.CellGraph()
	if len(g.Nodes) != 8 {
		t.Errorf("CellGraph has %d nodes, want 8", len(g.Nodes))
	}
	sp := g.ShortestPaths(m.Start, SearchOpts[Pt]{})
	if got := sp.Dist(m.End); got != 4 {
		t.Errorf("S→E = %d, want 4", got)
	}
	if got := sp.OnShortestPaths(m.End).Len(); got != 8 {
		t.Errorf("tiles on best paths = %d, want 8", got)
	}

	open, err := ParseMaze([]byte("..\n..\n"))
	if err != nil {
		t.Fatal(err)
	}
	if open.HasStart || open.HasEnd {
		t.Errorf("maze without S/E reported them")
	}
}

func TestParseMazeErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"#.x\n", ErrUnknownCell},
		{"##\n#\n", ErrRaggedGrid},
		{"", ErrEmptyGrid},
	}
	for _, tt := range tests {
		if _, err := ParseMaze([]byte(tt.in)); !errors.Is(err, tt.want) {
			t.Errorf("ParseMaze(%q) = %v, want %v", tt.in, err, tt.want)
		}
	}
}
