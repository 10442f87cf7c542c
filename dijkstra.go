package aoc

import (
	"math"
	"slices"

	"tailscale.com/util/set"
)

// Inf is the distance reported for nodes a search never reached.
const Inf = math.MaxInt

// Neighbors enumerates the arcs leaving a node, calling yield with each
// successor and the non-negative cost of reaching it. Enumeration stops
// early if yield returns false.
type Neighbors[K comparable] func(k K, yield func(next K, cost int) bool)

// SearchOpts configures Dijkstra.
type SearchOpts[K comparable] struct {
	// Target, if non-nil, stops the search as soon as the node it
	// accepts is finalized. Distances and predecessors of nodes that
	// were not yet finalized are then incomplete.
	Target func(K) bool

	// NoPrev skips predecessor tracking when only distances are needed.
	NoPrev bool
}

// ShortestPaths is the result of a single-source search.
type ShortestPaths[K comparable] struct {
	Source K

	dist map[K]int
	prev map[K]set.Set[K]
	done set.Set[K]

	// Found is the node accepted by SearchOpts.Target, if any.
	Found    K
	HasFound bool
}

// Dijkstra runs a single-source shortest path search from src over the
// graph described by next. Every arc cost must be non-negative.
//
// Nodes are finalized in order of increasing cost; ties pop in the order
// they were discovered so repeated runs over the same graph produce the
// same result. Whenever a strictly cheaper route to a node is found its
// predecessor set is replaced; an equally cheap route adds to it, so the
// predecessor sets describe every shortest path, not just one.
func Dijkstra[K comparable](src K, next Neighbors[K], opts SearchOpts[K]) *ShortestPaths[K] {
	sp := &ShortestPaths[K]{
		Source: src,
		dist:   map[K]int{src: 0},
		done:   make(set.Set[K]),
	}
	if !opts.NoPrev {
		sp.prev = make(map[K]set.Set[K])
	}

	q := MinQueue[K]()
	q.Push(&PQI[K]{V: src, P: 0})
	for q.Len() > 0 {
		it := q.Pop()
		u, d := it.V, it.P
		if sp.done.Contains(u) || d > sp.dist[u] {
			continue // stale entry
		}
		sp.done.Add(u)
		if opts.Target != nil && opts.Target(u) {
			sp.Found, sp.HasFound = u, true
			break
		}
		next(u, func(v K, w int) bool {
			if w < 0 {
				panic("negative edge weight")
			}
			nd := d + w
			old, seen := sp.dist[v]
			switch {
			case !seen || nd < old:
				sp.dist[v] = nd
				if sp.prev != nil {
					ps := make(set.Set[K])
					ps.Add(u)
					sp.prev[v] = ps
				}
				q.Push(&PQI[K]{V: v, P: nd})
			case nd == old && sp.prev != nil && v != src:
				sp.prev[v].Add(u)
			}
			return true
		})
	}
	return sp
}

// ShortestPaths runs Dijkstra over g from src.
func (g *Graph[K]) ShortestPaths(src K, opts SearchOpts[K]) *ShortestPaths[K] {
	return Dijkstra(src, g.Neighbors, opts)
}

// Dist returns the cost of the cheapest path from the source to k, or Inf
// if k was not reached.
func (sp *ShortestPaths[K]) Dist(k K) int {
	if d, ok := sp.dist[k]; ok {
		return d
	}
	return Inf
}

// Reached reports whether any path from the source to k was found.
func (sp *ShortestPaths[K]) Reached(k K) bool {
	_, ok := sp.dist[k]
	return ok
}

// Len returns the number of reached nodes, including the source.
func (sp *ShortestPaths[K]) Len() int {
	return len(sp.dist)
}

// ForEach calls f for every reached node and its distance.
func (sp *ShortestPaths[K]) ForEach(f func(k K, dist int)) {
	for k, d := range sp.dist {
		f(k, d)
	}
}

// Prev returns the nodes that precede k on some shortest path. The result
// is empty for the source, for unreached nodes, and when the search ran
// with NoPrev.
func (sp *ShortestPaths[K]) Prev(k K) set.Set[K] {
	if p := sp.prev[k]; p != nil {
		return p
	}
	return make(set.Set[K])
}

// Nearest returns the target with the smallest distance and that
// distance. It returns Inf if none of the targets was reached.
func (sp *ShortestPaths[K]) Nearest(targets ...K) (K, int) {
	var (
		best K
		bd   = Inf
	)
	for _, t := range targets {
		if d := sp.Dist(t); d < bd {
			best, bd = t, d
		}
	}
	return best, bd
}

// OnShortestPaths returns every node that lies on at least one shortest
// path from the source to any of ends. Unreached ends contribute nothing.
func (sp *ShortestPaths[K]) OnShortestPaths(ends ...K) set.Set[K] {
	out := make(set.Set[K])
	var s Stack[K]
	for _, e := range ends {
		if sp.Reached(e) && !out.Contains(e) {
			out.Add(e)
			s.Push(e)
		}
	}
	s.While(func(k K) bool {
		for p := range sp.prev[k] {
			if !out.Contains(p) {
				out.Add(p)
				s.Push(p)
			}
		}
		return true
	})
	return out
}

// Paths enumerates every shortest path from the source to end, each
// ordered source first. The count can grow exponentially with the number
// of equal-cost branches; prefer OnShortestPaths when only the node set is
// needed.
func (sp *ShortestPaths[K]) Paths(end K) [][]K {
	if !sp.Reached(end) {
		return nil
	}
	var out [][]K
	var walk func(k K, suffix []K)
	walk = func(k K, suffix []K) {
		suffix = append(suffix, k)
		if k == sp.Source {
			path := make([]K, len(suffix))
			for i, v := range suffix {
				path[len(suffix)-1-i] = v
			}
			out = append(out, path)
			return
		}
		for p := range sp.prev[k] {
			if slices.Contains(suffix, p) {
				continue // zero-weight cycle
			}
			walk(p, suffix[:len(suffix):len(suffix)])
		}
	}
	walk(end, nil)
	return out
}
