package aoc

import (
	"errors"
	"slices"
	"testing"
)

func TestParseGrid(t *testing.T) {
	digit := func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, errors.New("not a digit")
		}
		return int(r - '0'), nil
	}
	tests := []struct {
		in      string
		wantErr error
		size    Pt
	}{
		{in: "123\n456\n", size: Pt{3, 2}},
		{in: "12\r\n34\r\n", size: Pt{2, 2}},
		{in: "", wantErr: ErrEmptyGrid},
		{in: "\n\n", wantErr: ErrEmptyGrid},
		{in: "123\n45\n", wantErr: ErrRaggedGrid},
	}
	for _, tt := range tests {
		g, err := ParseGrid([]byte(tt.in), digit)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseGrid(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGrid(%q): %v", tt.in, err)
			continue
		}
		if got := g.Size(); got != tt.size {
			t.Errorf("ParseGrid(%q).Size() = %v, want %v", tt.in, got, tt.size)
		}
	}

	if _, err := ParseGrid([]byte("12\n3x\n"), digit); err == nil || err.Error() != "cell (1,1): not a digit" {
		t.Errorf("bad cell error = %v", err)
	}
}

func TestGridTransforms(t *testing.T) {
	g := RuneGrid([]byte("abc\ndef\n"))
	id := func(r rune) rune { return r }
	if got, want := g.Transpose().Format(id), "ad\nbe\ncf"; got != want {
		t.Errorf("Transpose =\n%s\nwant\n%s", got, want)
	}
	if got, want := g.RotateCounterClockwise().Format(id), "cf\nbe\nad"; got != want {
		t.Errorf("RotateCounterClockwise =\n%s\nwant\n%s", got, want)
	}
	c := g.Clone()
	c.Set(Pt{0, 0}, 'z')
	if g.At(Pt{0, 0}) != 'a' {
		t.Errorf("Clone shares storage with the original")
	}
	if g.Hash() == c.Hash() {
		t.Errorf("different grids hash equal")
	}
	c.Set(Pt{0, 0}, 'a')
	if g.Hash() != c.Hash() {
		t.Errorf("equal grids hash differently")
	}
	if p, ok := g.Find(func(r rune) bool { return r == 'e' }); !ok || p != (Pt{1, 1}) {
		t.Errorf("Find(e) = %v, %v", p, ok)
	}
	if _, ok := g.AtOk(Pt{3, 0}); ok {
		t.Errorf("AtOk out of bounds reported ok")
	}
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		if got := d.Turn(true).Turn(false); got != d {
			t.Errorf("%v right then left = %v", d, got)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v opposite twice = %v", d, got)
		}
		if got := d.TurnsTo(d.Opposite()); got != 2 {
			t.Errorf("%v.TurnsTo(opposite) = %d, want 2", d, got)
		}
		if got := d.TurnsTo(d.Turn(false)); got != 1 {
			t.Errorf("%v.TurnsTo(left) = %d, want 1", d, got)
		}
		p := Pt{3, 3}
		if got := p.Move(d).DirectionTo(p); got != d.Opposite() {
			t.Errorf("DirectionTo after moving %v = %v", d, got)
		}
		if got, ok := ParseDirection(rune(d.String()[0])); !ok || got != d {
			t.Errorf("ParseDirection(%v) = %v, %v", d, got, ok)
		}
	}
}

func TestPointHelpers(t *testing.T) {
	a, b := Pt{1, 2}, Pt{1, 6}
	if got, want := a.Between(b), []Pt{{1, 3}, {1, 4}, {1, 5}}; !slices.Equal(got, want) {
		t.Errorf("Between = %v, want %v", got, want)
	}
	if got := a.Between(a); got != nil {
		t.Errorf("Between(self) = %v", got)
	}
	if got := a.MDist(Pt{4, -1}); got != 6 {
		t.Errorf("MDist = %d, want 6", got)
	}
	if got := StandardizePt(Pt{-1, 12}, Pt{11, 7}); got != (Pt{10, 5}) {
		t.Errorf("StandardizePt = %v", got)
	}
	n := 0
	a.ForNeighbors(func(Pt) bool { n++; return true })
	if n != 8 {
		t.Errorf("ForNeighbors visited %d, want 8", n)
	}
	n = 0
	a.ForImmediateNeighbors(func(Pt) bool { n++; return true })
	if n != 4 {
		t.Errorf("ForImmediateNeighbors visited %d, want 4", n)
	}
}

func TestRegions(t *testing.T) {
	g := RuneGrid([]byte("AAAA\nBBCD\nBBCC\nEEEC\n"))
	regions := Regions(g)
	if len(regions) != 5 {
		t.Fatalf("got %d regions, want 5", len(regions))
	}
	sizes := map[rune]int{}
	for _, r := range regions {
		sizes[g.At(r[0])] += len(r)
	}
	want := map[rune]int{'A': 4, 'B': 4, 'C': 4, 'D': 1, 'E': 3}
	for k, v := range want {
		if sizes[k] != v {
			t.Errorf("region %c has %d cells, want %d", k, sizes[k], v)
		}
	}
}

func TestToGraph(t *testing.T) {
	g := RuneGrid([]byte("..#\n.##\n..."))
	gr := g.ToGraph(Pt{0, 0}, false, func(r rune) bool { return r == '#' })
	if len(gr.Nodes) != 6 {
		t.Errorf("ToGraph has %d nodes, want 6", len(gr.Nodes))
	}
	if !gr.Adjacent(Pt{0, 0}, Pt{1, 0}) || !gr.Adjacent(Pt{1, 0}, Pt{0, 0}) {
		t.Errorf("missing edge between (0,0) and (1,0)")
	}
	if gr.Adjacent(Pt{1, 0}, Pt{1, 1}) {
		t.Errorf("edge into wall")
	}
}
