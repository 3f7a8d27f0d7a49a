// SPDX-License-Identifier: MPL-2.0

// Package craft builds and queries the crafting dependency graph.
//
// The graph is a flat node arena addressed by opaque NodeID handles, with
// outgoing and incoming adjacency lists per node. Nodes form a closed variant
// set: Item, Synthesis, and Morph. Edges are directed, unweighted "produces /
// requires" relations; an edge from an ingredient into a synthesis, from a
// synthesis to the item it produces, and so on.
//
// Build assembles the graph from the parsed record lists in a single pass.
// The graph is never mutated afterwards; ShortestPath and the lookup helpers
// only read.
package craft
