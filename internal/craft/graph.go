// SPDX-License-Identifier: MPL-2.0

package craft

// Graph is a directed, unweighted crafting graph. The arena owns every node;
// edges are plain handle pairs kept as per-node adjacency lists. All edges
// are equivalent-cost, so no weights are stored.
type Graph struct {
	nodes []Node
	succ  [][]NodeID
	pred  [][]NodeID
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode inserts n into the arena and returns its handle. Handles are issued
// in insertion order, which all tie-breaks in this package rely on.
func (g *Graph) AddNode(n Node) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.succ = append(g.succ, nil)
	g.pred = append(g.pred, nil)
	return id
}

// AddEdge inserts a directed edge from -> to.
func (g *Graph) AddEdge(from, to NodeID) {
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)
}

// Node returns the node behind id.
func (g *Graph) Node(id NodeID) Node {
	return g.nodes[id]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, out := range g.succ {
		total += len(out)
	}
	return total
}

// Successors returns the targets of id's outgoing edges. The slice is owned
// by the graph and must not be modified.
func (g *Graph) Successors(id NodeID) []NodeID {
	return g.succ[id]
}

// Predecessors returns the sources of id's incoming edges. The slice is owned
// by the graph and must not be modified.
func (g *Graph) Predecessors(id NodeID) []NodeID {
	return g.pred[id]
}

// FindItem returns the handle of the item node whose name exactly equals
// name. Item names are unique, so at most one node can match.
func (g *Graph) FindItem(name string) (NodeID, bool) {
	for id, n := range g.nodes {
		if item, ok := n.(*Item); ok && item.Name == name {
			return NodeID(id), true
		}
	}
	return 0, false
}

// ItemNames returns the names of all item nodes in insertion order.
func (g *Graph) ItemNames() []string {
	var names []string
	for _, n := range g.nodes {
		if item, ok := n.(*Item); ok {
			names = append(names, item.Name)
		}
	}
	return names
}

// Items returns the handles of all item nodes in insertion order.
func (g *Graph) Items() []NodeID {
	var ids []NodeID
	for id, n := range g.nodes {
		if _, ok := n.(*Item); ok {
			ids = append(ids, NodeID(id))
		}
	}
	return ids
}
