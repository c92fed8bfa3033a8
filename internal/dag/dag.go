// SPDX-License-Identifier: MPL-2.0

// Package dag orders the nodes of a directed graph and finds the cycle that
// prevents an order. It is used to reject declared newtypes whose underlying
// types refer to one another, which Go reports as recursive type aliases.
package dag

import (
	"fmt"
	"strings"
)

type (
	// CycleError is returned when the graph contains a cycle. Cycle lists
	// the nodes along one cycle, with the first node repeated at the end.
	CycleError[N comparable] struct {
		Cycle []N
	}

	// Graph is a directed graph whose edge from A to B means A must come
	// before B. Nodes keep the order in which they were first added.
	Graph[N comparable] struct {
		out   map[N][]N
		nodes []N
		known map[N]bool
	}
)

func (e *CycleError[N]) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, n := range e.Cycle {
		parts[i] = fmt.Sprint(n)
	}
	return "cycle: " + strings.Join(parts, " -> ")
}

// New creates an empty Graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		out:   make(map[N][]N),
		known: make(map[N]bool),
	}
}

// AddNode adds n. Adding a node twice is a no-op.
func (g *Graph[N]) AddNode(n N) {
	if g.known[n] {
		return
	}
	g.known[n] = true
	g.nodes = append(g.nodes, n)
}

// AddEdge adds the edge from -> to, adding both nodes if needed. Repeated
// edges are ignored.
func (g *Graph[N]) AddEdge(from, to N) {
	g.AddNode(from)
	g.AddNode(to)
	for _, n := range g.out[from] {
		if n == to {
			return
		}
	}
	g.out[from] = append(g.out[from], to)
}

// Len returns the number of nodes.
func (g *Graph[N]) Len() int { return len(g.nodes) }

// Sort returns the nodes in topological order (Kahn's algorithm). Nodes
// that become ready together keep insertion order. If the graph has a
// cycle, Sort returns *CycleError naming one of them.
func (g *Graph[N]) Sort() ([]N, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	in := make(map[N]int, len(g.nodes))
	for _, targets := range g.out {
		for _, t := range targets {
			in[t]++
		}
	}

	var queue []N
	for _, n := range g.nodes {
		if in[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]N, 0, len(g.nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, t := range g.out[n] {
			in[t]--
			if in[t] == 0 {
				queue = append(queue, t)
			}
		}
	}

	if len(order) < len(g.nodes) {
		return nil, &CycleError[N]{Cycle: g.findCycle(in)}
	}
	return order, nil
}

// findCycle walks from the first node still holding incoming edges. Every
// such node has a predecessor that is also left over, so following
// predecessors must revisit a node.
func (g *Graph[N]) findCycle(in map[N]int) []N {
	pred := make(map[N]N)
	for _, n := range g.nodes {
		if in[n] == 0 {
			continue
		}
		for _, t := range g.out[n] {
			if in[t] > 0 {
				if _, ok := pred[t]; !ok {
					pred[t] = n
				}
			}
		}
	}

	var start N
	for _, n := range g.nodes {
		if in[n] > 0 {
			start = n
			break
		}
	}

	pos := make(map[N]int)
	var walk []N
	for n := start; ; n = pred[n] {
		if i, ok := pos[n]; ok {
			walk = walk[i:]
			break
		}
		pos[n] = len(walk)
		walk = append(walk, n)
	}

	// walk follows edges backwards; reverse it so it reads along the edges,
	// starting from the node added first.
	first := 0
	for i, n := range walk {
		if g.index(n) < g.index(walk[first]) {
			first = i
		}
	}
	cycle := make([]N, 0, len(walk)+1)
	for i := range walk {
		cycle = append(cycle, walk[(first-i+len(walk))%len(walk)])
	}
	return append(cycle, cycle[0])
}

func (g *Graph[N]) index(n N) int {
	for i, m := range g.nodes {
		if m == n {
			return i
		}
	}
	return -1
}
