// SPDX-License-Identifier: MPL-2.0

// Package dataset parses the respi item table: a CSV file in which every row
// describes one item, and rows that declare a recipe number additionally carry
// the synthesis fields (ingredients, output tags, morph pairs, quantities).
//
// Parsing is strictly positional. A row with an unexpected field count is a
// fatal ingestion error; within a well-shaped row, boolean flags are encoded
// as "field is non-empty" and numeric fields parse as small unsigned integers.
// The first row of the file is a header and is skipped.
//
// The package produces three flat record lists (items, syntheses, morphs) and
// performs no cross-row resolution; wiring names to one another is the graph
// builder's job (internal/craft).
package dataset
