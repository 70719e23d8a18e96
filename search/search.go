// Package search implements a uniform-cost (Dijkstra) search over implicit,
// non-negatively weighted directed graphs.
package search

import (
	"fmt"
)

var _ = fmt.Print

// Edge is an outgoing edge of a node, with the cost of traversing it.
type Edge[T comparable] struct {
	Cost int
	To   T
}

// Graph exposes the outgoing edges of a node. The order of the returned
// edges matters: among equally cheap routes the one discovered first wins.
type Graph[T comparable] interface {
	Neighbors(node T) []Edge[T]
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc[T comparable] func(node T) []Edge[T]

func (f GraphFunc[T]) Neighbors(node T) []Edge[T] { return f(node) }

// Path is a sequence of nodes together with the summed cost of the edges
// between them.
type Path[T comparable] struct {
	Nodes []T
	Cost  int
}

func (p Path[T]) Len() int { return len(p.Nodes) }

func (p Path[T]) Last() T { return p.Nodes[len(p.Nodes)-1] }

type frontier_entry[T comparable] struct {
	cost int
	path []T
	live bool
}

// frontier keeps entries in first-insertion order. Removed entries are
// tombstoned so that slots never shift.
type frontier[T comparable] struct {
	entries []frontier_entry[T]
	slots   map[T]int
	live    int
}

func (f *frontier[T]) push(node T, cost int, path []T) {
	f.slots[node] = len(f.entries)
	f.entries = append(f.entries, frontier_entry[T]{cost: cost, path: path, live: true})
	f.live++
}

// pop removes and returns the cheapest entry, the earliest inserted one
// winning ties.
func (f *frontier[T]) pop() frontier_entry[T] {
	best := -1
	for i := range f.entries {
		e := &f.entries[i]
		if e.live && (best < 0 || e.cost < f.entries[best].cost) {
			best = i
		}
	}
	ans := f.entries[best]
	f.entries[best] = frontier_entry[T]{}
	delete(f.slots, ans.path[len(ans.path)-1])
	f.live--
	return ans
}

func extend[T comparable](path []T, node T) []T {
	ans := make([]T, len(path), len(path)+1)
	copy(ans, path)
	return append(ans, node)
}

// ShortestPath returns a cheapest path from start to the first node that
// satisfies isDestination, both endpoints included. The second return value
// is false when no such node is reachable.
//
// Edge costs must be non-negative. When several cheapest paths exist the
// result is deterministic given a deterministic Graph: frontier ties go to
// the node that was discovered first and an already discovered node is only
// re-routed by a strictly cheaper path.
func ShortestPath[T comparable](start T, isDestination func(T) bool, g Graph[T]) (Path[T], bool) {
	front := frontier[T]{slots: make(map[T]int)}
	front.push(start, 0, []T{start})
	finalized := make(map[T]struct{})

	for front.live > 0 {
		best := front.pop()
		current := best.path[len(best.path)-1]
		if isDestination(current) {
			return Path[T]{Nodes: best.path, Cost: best.cost}, true
		}
		finalized[current] = struct{}{}

		for _, e := range g.Neighbors(current) {
			if e.Cost < 0 {
				panic(fmt.Sprintf("negative edge cost %d from %v to %v", e.Cost, current, e.To))
			}
			cost := best.cost + e.Cost
			if idx, found := front.slots[e.To]; found {
				if old := &front.entries[idx]; old.cost > cost {
					old.cost = cost
					old.path = extend(best.path, e.To)
				}
			} else if _, done := finalized[e.To]; !done {
				front.push(e.To, cost, extend(best.path, e.To))
			}
		}
	}
	return Path[T]{}, false
}
