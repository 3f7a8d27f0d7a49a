// SPDX-License-Identifier: MPL-2.0

package dataset

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// row renders one CSV row with the given fields set and all others empty.
func row(set map[int]string) string {
	fields := make([]string, RowFields)
	for i, v := range set {
		fields[i] = v
	}
	return strings.Join(fields, ",")
}

func parseRows(t *testing.T, rows ...string) *Table {
	t.Helper()
	data := row(nil) + "\n" + strings.Join(rows, "\n") + "\n"
	tbl, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestParse_MaterialRow(t *testing.T) {
	t.Parallel()
	tbl := parseRows(t, row(map[int]string{
		fieldName:           "Wood",
		fieldFire:           "x",
		fieldWind:           "x",
		fieldCategory1:      "Lumber",
		fieldCategory3:      "Fuel",
		fieldMaterialNumber: "7",
	}))

	if len(tbl.Items) != 1 || len(tbl.Syntheses) != 0 || len(tbl.Morphs) != 0 {
		t.Fatalf("expected exactly one item, got %d/%d/%d",
			len(tbl.Items), len(tbl.Syntheses), len(tbl.Morphs))
	}
	item := tbl.Items[0]
	if item.Name != "Wood" {
		t.Errorf("expected name Wood, got %q", item.Name)
	}
	if !item.Fire || item.Ice || item.Light || !item.Wind {
		t.Errorf("unexpected elemental flags: %+v", item)
	}
	if !slices.Equal(item.Categories, []string{"Lumber", "Fuel"}) {
		t.Errorf("expected categories [Lumber Fuel], got %v", item.Categories)
	}
	if item.Number.Class != MaterialNumber || item.Number.Number != 7 {
		t.Errorf("expected material 7, got %+v", item.Number)
	}
}

func TestParse_RecipeRowYieldsSynthesis(t *testing.T) {
	t.Parallel()
	tbl := parseRows(t, row(map[int]string{
		fieldName:          "Plank",
		fieldRecipeNumber:  "2",
		fieldChapter:       "1",
		fieldSynthesisType: "carpentry",
		fieldIngredient1:   "Wood",
		fieldIngredient3:   "Resin",
		fieldAddCategory1:  "Building",
		fieldExtraQuantity: "2",
	}))

	if len(tbl.Syntheses) != 1 {
		t.Fatalf("expected one synthesis, got %d", len(tbl.Syntheses))
	}
	syn := tbl.Syntheses[0]
	if syn.Name != "Plank" || syn.Chapter != "1" || syn.Type != "carpentry" {
		t.Errorf("unexpected synthesis header: %+v", syn)
	}
	if !slices.Equal(syn.Ingredients, []string{"Wood", "Resin"}) {
		t.Errorf("expected ingredients [Wood Resin], got %v", syn.Ingredients)
	}
	if !slices.Equal(syn.AddCategories, []string{"Building"}) {
		t.Errorf("expected add categories [Building], got %v", syn.AddCategories)
	}
	if syn.ExtraQuantity == nil || *syn.ExtraQuantity != 2 {
		t.Errorf("expected extra quantity 2, got %v", syn.ExtraQuantity)
	}
	if syn.EffectSpread != nil {
		t.Errorf("expected no effect spread, got %v", syn.EffectSpread)
	}

	// The recipe row is still an item row.
	if len(tbl.Items) != 1 || tbl.Items[0].Number.Class != RecipeNumber {
		t.Fatalf("expected the row to also yield a recipe-classified item")
	}
}

func TestParse_MorphPairs(t *testing.T) {
	t.Parallel()
	tbl := parseRows(t, row(map[int]string{
		fieldName:           "Hardened Plank",
		fieldRecipeNumber:   "3",
		fieldChapter:        "2",
		fieldFromRecipe1:    "Plank",
		fieldFromRequiring1: "Resin",
		// Second pair is half-filled and must be ignored.
		fieldFromRecipe2: "Beam",
	}))

	if len(tbl.Morphs) != 1 {
		t.Fatalf("expected one morph, got %d", len(tbl.Morphs))
	}
	m := tbl.Morphs[0]
	if m.Name != "Hardened Plank" || m.FromRecipe != "Plank" || m.FromRequiring != "Resin" {
		t.Errorf("unexpected morph: %+v", m)
	}
	if m.Chapter != "2" {
		t.Errorf("expected chapter 2, got %q", m.Chapter)
	}
}

func TestParse_BothMorphPairs(t *testing.T) {
	t.Parallel()
	tbl := parseRows(t, row(map[int]string{
		fieldName:           "Crystal",
		fieldRecipeNumber:   "4",
		fieldFromRecipe1:    "Shard",
		fieldFromRequiring1: "Dust",
		fieldFromRecipe2:    "Geode",
		fieldFromRequiring2: "Hammer",
	}))

	if len(tbl.Morphs) != 2 {
		t.Fatalf("expected two morphs, got %d", len(tbl.Morphs))
	}
	if tbl.Morphs[1].FromRecipe != "Geode" || tbl.Morphs[1].FromRequiring != "Hammer" {
		t.Errorf("unexpected second morph: %+v", tbl.Morphs[1])
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	t.Parallel()
	tbl, err := Parse(strings.NewReader(row(nil) + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tbl.Items) != 0 {
		t.Errorf("expected no items, got %d", len(tbl.Items))
	}
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input, got nil")
	}
}

func TestParse_WrongFieldCount(t *testing.T) {
	t.Parallel()
	data := row(nil) + "\nWood,x\n"
	_, err := Parse(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error for short row, got nil")
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected *RowError, got %T: %v", err, err)
	}
	if rowErr.Row != 2 {
		t.Errorf("expected failure on row 2, got %d", rowErr.Row)
	}
}

func TestParse_BadNumber(t *testing.T) {
	t.Parallel()
	data := row(nil) + "\n" + row(map[int]string{
		fieldName:           "Wood",
		fieldMaterialNumber: "many",
	}) + "\n"
	_, err := Parse(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error for non-numeric classifier, got nil")
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected *RowError, got %T: %v", err, err)
	}
}

func TestParse_NumberOverflow(t *testing.T) {
	t.Parallel()
	data := row(nil) + "\n" + row(map[int]string{
		fieldName:          "Plank",
		fieldRecipeNumber:  "1",
		fieldExtraQuantity: "300",
	}) + "\n"
	if _, err := Parse(strings.NewReader(data)); err == nil {
		t.Fatal("expected error for out-of-range quantity, got nil")
	}
}
