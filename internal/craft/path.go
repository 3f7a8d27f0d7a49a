// SPDX-License-Identifier: MPL-2.0

package craft

import (
	"strings"
)

// ShortestPath returns an unweighted shortest path from start to goal as an
// ordered node sequence, following edges in their stored direction only.
// All edges cost the same, so breadth-first order is sufficient. Ties among
// equally short paths resolve by adjacency order, which is deterministic for
// a given graph.
//
// The second return is false when goal is unreachable from start. When start
// and goal are the same node, the path is the single-node sequence.
func (g *Graph) ShortestPath(start, goal NodeID) ([]NodeID, bool) {
	if start == goal {
		return []NodeID{start}, true
	}

	prev := make([]NodeID, len(g.nodes))
	for i := range prev {
		prev[i] = -1
	}
	prev[start] = start

	queue := []NodeID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.succ[cur] {
			if prev[next] != -1 {
				continue
			}
			prev[next] = cur
			if next == goal {
				return backtrack(prev, start, goal), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// backtrack rebuilds the path from the predecessor table.
func backtrack(prev []NodeID, start, goal NodeID) []NodeID {
	var path []NodeID
	for cur := goal; cur != start; cur = prev[cur] {
		path = append(path, cur)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Labels maps a node sequence to its display labels.
func (g *Graph) Labels(path []NodeID) []string {
	labels := make([]string, len(path))
	for i, id := range path {
		labels[i] = g.nodes[id].Label()
	}
	return labels
}

// RenderPath joins the path's labels with sep. No separator trails the final
// element.
func (g *Graph) RenderPath(path []NodeID, sep string) string {
	return strings.Join(g.Labels(path), sep)
}
