// SPDX-License-Identifier: MPL-2.0

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// RowFields is the exact field count every row of the item table must have.
const RowFields = 25

// Positional field indices within a row.
const (
	fieldName = iota
	fieldFire
	fieldIce
	fieldLight
	fieldWind
	fieldCategory1
	fieldCategory2
	fieldCategory3
	fieldCategory4
	fieldMaterialNumber
	fieldRecipeNumber
	fieldChapter
	fieldSynthesisType
	fieldIngredient1
	fieldIngredient2
	fieldIngredient3
	fieldIngredient4
	fieldAddCategory1
	fieldAddCategory2
	fieldFromRecipe1
	fieldFromRequiring1
	fieldFromRecipe2
	fieldFromRequiring2
	fieldExtraQuantity
	fieldEffectSpread
)

// RowError reports a row that could not be ingested. Row is 1-based and
// counts the header.
type RowError struct {
	Row   int
	Cause error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *RowError) Unwrap() error {
	return e.Cause
}

// Load reads and parses the item table at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open item table: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the item table from r. The first row is treated as a header and
// skipped; every following row must have exactly RowFields fields.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = RowFields

	// Header row. An empty file is malformed: there is no shape to validate.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("item table is empty")
		}
		return nil, &RowError{Row: 1, Cause: err}
	}

	tbl := &Table{}
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RowError{Row: row, Cause: err}
		}
		if err := parseRow(record, tbl); err != nil {
			return nil, &RowError{Row: row, Cause: err}
		}
	}
	return tbl, nil
}

// parseRow appends the records encoded by one row: always an item, plus a
// synthesis and up to two morphs when the row declares a recipe number.
func parseRow(record []string, tbl *Table) error {
	name := record[fieldName]

	number, err := parseItemNumber(record)
	if err != nil {
		return err
	}

	if number.Class == RecipeNumber {
		syn := Synthesis{
			Name:          name,
			Chapter:       record[fieldChapter],
			Type:          record[fieldSynthesisType],
			Ingredients:   nonEmpty(record[fieldIngredient1:fieldIngredient4+1]...),
			AddCategories: nonEmpty(record[fieldAddCategory1:fieldAddCategory2+1]...),
		}
		if syn.ExtraQuantity, err = parseOptByte(record[fieldExtraQuantity]); err != nil {
			return fmt.Errorf("extra synthesis quantity: %w", err)
		}
		if syn.EffectSpread, err = parseOptByte(record[fieldEffectSpread]); err != nil {
			return fmt.Errorf("effect spread: %w", err)
		}
		tbl.Syntheses = append(tbl.Syntheses, syn)

		// A morph pair only counts when both halves are present.
		for _, pair := range [][2]string{
			{record[fieldFromRecipe1], record[fieldFromRequiring1]},
			{record[fieldFromRecipe2], record[fieldFromRequiring2]},
		} {
			if pair[0] != "" && pair[1] != "" {
				tbl.Morphs = append(tbl.Morphs, Morph{
					Name:          name,
					Chapter:       record[fieldChapter],
					FromRecipe:    pair[0],
					FromRequiring: pair[1],
				})
			}
		}
	}

	tbl.Items = append(tbl.Items, Item{
		Name:       name,
		Fire:       record[fieldFire] != "",
		Ice:        record[fieldIce] != "",
		Light:      record[fieldLight] != "",
		Wind:       record[fieldWind] != "",
		Categories: nonEmpty(record[fieldCategory1:fieldCategory4+1]...),
		Number:     number,
	})
	return nil
}

// parseItemNumber decodes the two mutually exclusive numeric classifiers.
// At most one of the two slots is ever filled; the material slot takes
// precedence if both are.
func parseItemNumber(record []string) (ItemNumber, error) {
	switch {
	case record[fieldMaterialNumber] != "":
		n, err := parseByte(record[fieldMaterialNumber])
		if err != nil {
			return ItemNumber{}, fmt.Errorf("material number: %w", err)
		}
		return ItemNumber{Class: MaterialNumber, Number: n}, nil
	case record[fieldRecipeNumber] != "":
		n, err := parseByte(record[fieldRecipeNumber])
		if err != nil {
			return ItemNumber{}, fmt.Errorf("recipe number: %w", err)
		}
		return ItemNumber{Class: RecipeNumber, Number: n}, nil
	default:
		return ItemNumber{Class: Unclassified}, nil
	}
}

func parseByte(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}

func parseOptByte(s string) (*uint8, error) {
	if s == "" {
		return nil, nil
	}
	n, err := parseByte(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// nonEmpty filters out empty fields, preserving order.
func nonEmpty(fields ...string) []string {
	var out []string
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
