// SPDX-License-Identifier: MPL-2.0

package craft

import (
	"github.com/hw-lunemann/respi/internal/dataset"
)

type (
	// NodeID is an opaque handle to a node inside a Graph. Handles are only
	// meaningful for the graph that issued them.
	NodeID int

	// Node is the closed variant set of graph nodes. Algorithms operate on
	// NodeID handles and inspect the variant only where payload is needed
	// (ingredient matching, labeling).
	Node interface {
		// Label is the display label used when rendering paths: an item's
		// name, or a fixed marker for the recipe variants.
		Label() string

		node()
	}

	// Item is a craftable or raw game object.
	Item struct {
		Name       string
		Fire       bool
		Ice        bool
		Light      bool
		Wind       bool
		Categories []string
		Number     dataset.ItemNumber
	}

	// Synthesis is a recipe node. It has no name of its own; it is identified
	// by its position in the graph and the item it produces.
	Synthesis struct {
		Chapter       string
		Type          string
		AddCategories []string
		ExtraQuantity *uint8
		EffectSpread  *uint8
	}

	// Morph is an upgrade transformation node. It carries no payload; its
	// meaning is entirely in its three incident edges.
	Morph struct{}
)

// Label returns the item's name.
func (i *Item) Label() string { return i.Name }

// Label returns the fixed synthesis marker.
func (*Synthesis) Label() string { return "Synthesis" }

// Label returns the fixed morph marker.
func (*Morph) Label() string { return "Morph" }

func (*Item) node()      {}
func (*Synthesis) node() {}
func (*Morph) node()     {}

// Matches reports whether spec equals the item's name or any of its category
// tags. This is the fuzzy half of ingredient resolution: a specifier written
// as a category wires every item carrying that tag.
func (i *Item) Matches(spec string) bool {
	if i.Name == spec {
		return true
	}
	for _, c := range i.Categories {
		if c == spec {
			return true
		}
	}
	return false
}
