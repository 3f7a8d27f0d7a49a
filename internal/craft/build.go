// SPDX-License-Identifier: MPL-2.0

package craft

import (
	"fmt"

	"github.com/hw-lunemann/respi/internal/dataset"
)

type (
	// UnknownItemError reports a record referencing an item name that is
	// absent from the item list. Ref says which reference failed (e.g.
	// "synthesis output", "morph result").
	UnknownItemError struct {
		Name string
		Ref  string
	}

	// MissingRecipeError reports a morph whose from_recipe item exists but is
	// not the output of any synthesis.
	MissingRecipeError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("%s references unknown item %q", e.Ref, e.Name)
}

// Error implements the error interface.
func (e *MissingRecipeError) Error() string {
	return fmt.Sprintf("morph base item %q is not produced by any synthesis", e.Name)
}

// Build assembles the crafting graph from the parsed record lists in a single
// pass: items first, then syntheses with their ingredient edges, then morphs.
// Any name lookup failure aborts construction; no partial graph is returned.
//
// Ingredient specifiers are the exception: a specifier matching no item is
// silently skipped, since the table may reference materials it does not list.
func Build(tbl *dataset.Table) (*Graph, error) {
	g := NewGraph()

	index := make(map[string]NodeID, len(tbl.Items))
	for _, rec := range tbl.Items {
		id := g.AddNode(&Item{
			Name:       rec.Name,
			Fire:       rec.Fire,
			Ice:        rec.Ice,
			Light:      rec.Light,
			Wind:       rec.Wind,
			Categories: rec.Categories,
			Number:     rec.Number,
		})
		index[rec.Name] = id
	}
	items := g.Items()

	for _, rec := range tbl.Syntheses {
		output, ok := index[rec.Name]
		if !ok {
			return nil, &UnknownItemError{Name: rec.Name, Ref: "synthesis output"}
		}
		synth := g.AddNode(&Synthesis{
			Chapter:       rec.Chapter,
			Type:          rec.Type,
			AddCategories: rec.AddCategories,
			ExtraQuantity: rec.ExtraQuantity,
			EffectSpread:  rec.EffectSpread,
		})
		g.AddEdge(synth, output)

		// Each matching item is wired at most once, even when several
		// specifiers overlap on the same node.
		wired := make(map[NodeID]bool, len(rec.Ingredients))
		for _, spec := range rec.Ingredients {
			for _, id := range items {
				if wired[id] {
					continue
				}
				if g.Node(id).(*Item).Matches(spec) {
					g.AddEdge(id, synth)
					wired[id] = true
				}
			}
		}
	}

	for _, rec := range tbl.Morphs {
		result, ok := index[rec.Name]
		if !ok {
			return nil, &UnknownItemError{Name: rec.Name, Ref: "morph result"}
		}
		required, ok := index[rec.FromRequiring]
		if !ok {
			return nil, &UnknownItemError{Name: rec.FromRequiring, Ref: "morph requirement"}
		}
		base, ok := index[rec.FromRecipe]
		if !ok {
			return nil, &UnknownItemError{Name: rec.FromRecipe, Ref: "morph base recipe"}
		}

		recipe, ok := producerOf(g, base)
		if !ok {
			return nil, &MissingRecipeError{Name: rec.FromRecipe}
		}

		morph := g.AddNode(&Morph{})
		g.AddEdge(recipe, morph)
		g.AddEdge(required, morph)
		g.AddEdge(morph, result)
	}

	return g, nil
}

// producerOf returns the synthesis node producing item. When several exist
// (a data-quality oddity), the lowest handle wins: earliest in construction
// order, which is deterministic for a given table.
func producerOf(g *Graph, item NodeID) (NodeID, bool) {
	found := false
	var best NodeID
	for _, p := range g.Predecessors(item) {
		if _, ok := g.Node(p).(*Synthesis); !ok {
			continue
		}
		if !found || p < best {
			best = p
			found = true
		}
	}
	return best, found
}
