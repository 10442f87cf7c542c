package aoc

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func randomGraph(r *rand.Rand, n int) *Graph[int] {
	var g Graph[int]
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < n*3; i++ {
		a, b := r.Intn(n), r.Intn(n)
		if a == b {
			continue
		}
		g.AddArc(a, b, r.Intn(10))
	}
	return &g
}

func TestDijkstraMatchesFloydWarshall(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		g := randomGraph(r, 2+r.Intn(10))
		all := g.AllShortestPaths()
		for src := range g.Nodes {
			sp := g.ShortestPaths(src, SearchOpts[int]{})
			for dst := range g.Nodes {
				if got, want := sp.Dist(dst), all[Edge[int]{src, dst}]; got != want {
					t.Fatalf("graph %d: Dist(%d→%d) = %d, want %d", iter, src, dst, got, want)
				}
			}
		}
	}
}

func diamond() *Graph[string] {
	var g Graph[string]
	g.AddArc("A", "B", 1)
	g.AddArc("A", "C", 1)
	g.AddArc("B", "D", 1)
	g.AddArc("C", "D", 1)
	g.AddArc("A", "D", 3)
	return &g
}

func TestDiamondBestPaths(t *testing.T) {
	sp := diamond().ShortestPaths("A", SearchOpts[string]{})
	if got := sp.Dist("D"); got != 2 {
		t.Errorf("Dist(D) = %d, want 2", got)
	}
	prev := sp.Prev("D").Slice()
	slices.Sort(prev)
	if got := strings.Join(prev, ","); got != "B,C" {
		t.Errorf("Prev(D) = %s, want B,C", got)
	}
	on := sp.OnShortestPaths("D").Slice()
	slices.Sort(on)
	if got := strings.Join(on, ","); got != "A,B,C,D" {
		t.Errorf("OnShortestPaths(D) = %s, want A,B,C,D", got)
	}
	var paths []string
	for _, p := range sp.Paths("D") {
		paths = append(paths, strings.Join(p, ""))
	}
	slices.Sort(paths)
	if got := strings.Join(paths, " "); got != "ABD ACD" {
		t.Errorf("Paths(D) = %s, want ABD ACD", got)
	}
	if k, d := sp.Nearest("B", "D", "Z"); k != "B" || d != 1 {
		t.Errorf("Nearest = %s, %d; want B, 1", k, d)
	}
}

func TestCheaperPathReplacesPredecessors(t *testing.T) {
	var g Graph[string]
	g.AddArc("S", "X", 1)
	g.AddArc("S", "Y", 5)
	g.AddArc("Y", "T", 1)
	g.AddArc("X", "M", 1)
	g.AddArc("M", "T", 1)
	sp := g.ShortestPaths("S", SearchOpts[string]{})
	if got := sp.Prev("T").Slice(); len(got) != 1 || got[0] != "M" {
		t.Errorf("Prev(T) = %v, want [M]", got)
	}
	if sp.OnShortestPaths("T").Contains("Y") {
		t.Errorf("Y is on a shortest path to T")
	}
}

func TestDijkstraIdempotent(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(7)), 30)
	a := g.ShortestPaths(0, SearchOpts[int]{})
	b := g.ShortestPaths(0, SearchOpts[int]{})
	for k := range g.Nodes {
		if a.Dist(k) != b.Dist(k) {
			t.Errorf("Dist(%d) differs between runs: %d vs %d", k, a.Dist(k), b.Dist(k))
		}
		pa, pb := a.Prev(k).Slice(), b.Prev(k).Slice()
		slices.Sort(pa)
		slices.Sort(pb)
		if !slices.Equal(pa, pb) {
			t.Errorf("Prev(%d) differs between runs: %v vs %v", k, pa, pb)
		}
	}
}

func TestIsolatedSource(t *testing.T) {
	g := diamond()
	g.AddNode("Z")
	sp := g.ShortestPaths("Z", SearchOpts[string]{})
	for k := range g.Nodes {
		want := Inf
		if k == "Z" {
			want = 0
		}
		if got := sp.Dist(k); got != want {
			t.Errorf("Dist(%s) = %d, want %d", k, got, want)
		}
		if sp.Prev(k).Len() != 0 {
			t.Errorf("Prev(%s) = %v, want empty", k, sp.Prev(k))
		}
	}
	if sp.Len() != 1 {
		t.Errorf("Len() = %d, want 1", sp.Len())
	}
	if got := sp.Paths("D"); got != nil {
		t.Errorf("Paths to unreached node = %v", got)
	}
	if got := sp.OnShortestPaths("D"); got.Len() != 0 {
		t.Errorf("OnShortestPaths to unreached node = %v", got)
	}
}

func TestTargetStopsEarly(t *testing.T) {
	var g Graph[int]
	for i := 0; i < 10; i++ {
		g.AddArc(i, i+1, 1)
	}
	sp := g.ShortestPaths(0, SearchOpts[int]{Target: func(k int) bool { return k == 3 }})
	if !sp.HasFound || sp.Found != 3 || sp.Dist(3) != 3 {
		t.Errorf("Found = %v/%v, Dist(3) = %d", sp.Found, sp.HasFound, sp.Dist(3))
	}
	if sp.Reached(8) {
		t.Errorf("search continued past the target")
	}
}

func TestNegativeWeightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("AddArc with negative weight did not panic")
		}
	}()
	var g Graph[int]
	g.AddArc(0, 1, -1)
}

func TestCountPathsDAG(t *testing.T) {
	var g Graph[int]
	// 0 fans out to 1..3, each of which fans into 4 and 5; 4 feeds 5.
	for i := 1; i <= 3; i++ {
		g.AddArc(0, i, 1)
		g.AddArc(i, 4, 1)
		g.AddArc(i, 5, 1)
	}
	g.AddArc(4, 5, 1)
	g.AddNode(9)
	counts := g.CountPathsDAG(0)
	for _, end := range []int{1, 4, 5} {
		if got, want := counts[end], g.NumPaths(0, end); got != want {
			t.Errorf("CountPathsDAG[%d] = %d, NumPaths = %d", end, got, want)
		}
	}
	if counts[5] != 6 {
		t.Errorf("paths to 5 = %d, want 6", counts[5])
	}
	if _, ok := counts[9]; ok {
		t.Errorf("unreachable node counted")
	}
}

func TestCliques(t *testing.T) {
	var g Graph[string]
	// a-b-c-d fully connected, plus a tail d-e-f.
	nodes := []string{"a", "b", "c", "d"}
	for i, x := range nodes {
		for _, y := range nodes[i+1:] {
			g.AddEdge(x, y, 1)
		}
	}
	g.AddEdge("d", "e", 1)
	g.AddEdge("e", "f", 1)

	if got := len(g.Triangles()); got != 4 {
		t.Errorf("Triangles() found %d, want 4", got)
	}
	clique := g.MaxClique()
	slices.Sort(clique)
	if got := strings.Join(clique, ","); got != "a,b,c,d" {
		t.Errorf("MaxClique() = %s, want a,b,c,d", got)
	}
}

func TestGraphEdit(t *testing.T) {
	g := diamond()
	c := g.Clone()
	c.RemoveNode("B")
	c.RemoveEdge("A", "C")
	if !g.Adjacent("A", "B") || !g.Adjacent("A", "C") {
		t.Errorf("Clone shares edges with the original")
	}
	reach := c.ReachableNodes("A")
	if got := fmt.Sprint(len(reach), reach["D"], reach["B"]); got != "2 true false" {
		t.Errorf("ReachableNodes after edits = %v", reach)
	}
}
