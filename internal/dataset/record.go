// SPDX-License-Identifier: MPL-2.0

package dataset

type (
	// ItemClass discriminates the item-number classification of an item row.
	ItemClass int

	// ItemNumber is the classification of an item: exactly one of
	// unclassified, material number, or recipe number. A recipe number marks
	// the item as the output of a synthesis.
	ItemNumber struct {
		Class  ItemClass
		Number uint8
	}

	// Item is one parsed item row. Categories holds up to four free-text tags
	// used for ingredient matching; they are not required to be unique across
	// items.
	Item struct {
		Name       string
		Fire       bool
		Ice        bool
		Light      bool
		Wind       bool
		Categories []string
		Number     ItemNumber
	}

	// Synthesis is the recipe block of a row that declares a recipe number.
	// Name is the item the synthesis produces. Ingredients holds up to four
	// specifiers, each either an item name or a category tag; they are kept
	// unresolved here.
	Synthesis struct {
		Name          string
		Chapter       string
		Type          string
		Ingredients   []string
		AddCategories []string
		ExtraQuantity *uint8
		EffectSpread  *uint8
	}

	// Morph describes an upgrade transformation: given the synthesis that
	// produces FromRecipe, and the separately consumed item FromRequiring,
	// produce Name instead.
	Morph struct {
		Name          string
		Chapter       string
		FromRecipe    string
		FromRequiring string
	}

	// Table is the full parsed dataset.
	Table struct {
		Items     []Item
		Syntheses []Synthesis
		Morphs    []Morph
	}
)

const (
	// Unclassified marks an item row with neither numeric classifier set.
	Unclassified ItemClass = iota
	// MaterialNumber marks a raw material row.
	MaterialNumber
	// RecipeNumber marks an item that is the output of a synthesis.
	RecipeNumber
)

// String returns a short human-readable label for the classification.
func (c ItemClass) String() string {
	switch c {
	case MaterialNumber:
		return "material"
	case RecipeNumber:
		return "recipe"
	default:
		return "unclassified"
	}
}
