package aoc

import (
	"golang.org/x/exp/maps"
	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// Graph is a weighted directed graph stored as adjacency maps.
// Edges[a][b] is the weight of the arc a→b.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) AddNode(a K) {
	mak.Set(&g.Nodes, a, true)
}

// AddArc adds the one-way arc a→b with weight w, replacing any existing
// a→b arc.
func (g *Graph[K]) AddArc(a, b K, w int) {
	if w < 0 {
		panic("negative edge weight")
	}
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		mak.Set(&g.Edges, a, make(map[K]int))
	}
	g.Edges[a][b] = w
}

// AddEdge adds arcs in both directions between a and b.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

// RemoveEdge removes the arcs between a and b in both directions.
func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

func (g *Graph[K]) RemoveNode(a K) {
	for _, e := range g.Edges {
		delete(e, a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// Adjacent reports whether there is an arc a→b.
func (g *Graph[K]) Adjacent(a, b K) bool {
	_, ok := g.Edges[a][b]
	return ok
}

// Neighbors calls yield for each arc leaving k until yield returns false.
func (g *Graph[K]) Neighbors(k K, yield func(next K, cost int) bool) {
	for n, w := range g.Edges[k] {
		if !yield(n, w) {
			return
		}
	}
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// NumPaths returns the number of distinct paths from start to end that
// never repeat a node.
func (g *Graph[K]) NumPaths(start, end K) int {
	return g.numPathsHelper(start, end, make(map[K]bool))
}

func (g *Graph[K]) numPathsHelper(start, end K, visited map[K]bool) int {
	if start == end {
		return 1
	}
	visited[start] = true
	defer delete(visited, start)
	count := 0
	for k := range g.Edges[start] {
		if !visited[k] {
			count += g.numPathsHelper(k, end, visited)
		}
	}
	return count
}

// CountPathsDAG returns the number of paths from start to each node
// reachable from it. g must be acyclic.
func (g *Graph[K]) CountPathsDAG(start K) map[K]int {
	memo := make(map[K]int)
	var count func(K) int
	rev := make(map[K][]K)
	for a, e := range g.Edges {
		for b := range e {
			rev[b] = append(rev[b], a)
		}
	}
	reach := g.ReachableNodes(start)
	count = func(k K) int {
		if k == start {
			return 1
		}
		if v, ok := memo[k]; ok {
			return v
		}
		n := 0
		for _, p := range rev[k] {
			if reach[p] {
				n += count(p)
			}
		}
		memo[k] = n
		return n
	}
	out := make(map[K]int, len(reach))
	for k := range reach {
		out[k] = count(k)
	}
	return out
}

// AllShortestPaths returns the shortest distance between every ordered
// pair of nodes using Floyd–Warshall. Unreachable pairs hold Inf.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		for k2 := range g.Nodes {
			if k1 == k2 {
				dist[key{k1, k1}] = 0
			} else if v, ok := g.Edges[k1][k2]; ok {
				dist[key{k1, k2}] = v
			} else {
				dist[key{k1, k2}] = Inf
			}
		}
	}
	for k2 := range g.Nodes {
		for k1 := range g.Nodes {
			e12 := dist[key{k1, k2}]
			if e12 == Inf {
				continue
			}
			for k3 := range g.Nodes {
				e23 := dist[key{k2, k3}]
				if e23 == Inf {
					continue
				}
				if e := e12 + e23; e < dist[key{k1, k3}] {
					dist[key{k1, k3}] = e
				}
			}
		}
	}
	return dist
}

// Triangles returns every set of three mutually adjacent nodes, each
// exactly once. The graph is treated as undirected.
func (g *Graph[K]) Triangles() [][3]K {
	var out [][3]K
	seen := make(set.Set[[3]K])
	for a := range g.Nodes {
		for b := range g.Edges[a] {
			for c := range g.Edges[b] {
				if c == a || !g.Adjacent(c, a) {
					continue
				}
				tri := [3]K{a, b, c}
				if seen.Contains(tri) {
					continue
				}
				for _, perm := range [][3]K{{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}} {
					seen.Add(perm)
				}
				out = append(out, tri)
			}
		}
	}
	return out
}

// MaxClique returns a largest set of mutually adjacent nodes, found with
// Bron–Kerbosch with pivoting. The graph is treated as undirected.
func (g *Graph[K]) MaxClique() []K {
	var best []K
	var bk func(r []K, p, x set.Set[K])
	bk = func(r []K, p, x set.Set[K]) {
		if p.Len() == 0 && x.Len() == 0 {
			if len(r) > len(best) {
				best = append([]K(nil), r...)
			}
			return
		}
		if len(r)+p.Len() <= len(best) {
			return
		}
		var pivot K
		most := -1
		for _, s := range []set.Set[K]{p, x} {
			for u := range s {
				n := 0
				for v := range p {
					if g.Adjacent(u, v) {
						n++
					}
				}
				if n > most {
					pivot, most = u, n
				}
			}
		}
		for _, v := range p.Slice() {
			if g.Adjacent(pivot, v) {
				continue
			}
			np, nx := make(set.Set[K]), make(set.Set[K])
			for n := range g.Edges[v] {
				if p.Contains(n) {
					np.Add(n)
				}
				if x.Contains(n) {
					nx.Add(n)
				}
			}
			bk(append(r, v), np, nx)
			p.Delete(v)
			x.Add(v)
		}
	}
	p := make(set.Set[K])
	for k := range g.Nodes {
		p.Add(k)
	}
	bk(nil, p, make(set.Set[K]))
	return best
}

type Edge[T comparable] struct {
	A, B T
}
