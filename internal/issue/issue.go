// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	DatasetNotFoundId Id = iota + 1
	DatasetMalformedId
	UnknownItemReferenceId
	MorphBaseNotCraftableId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	datasetNotFoundIssue = &Issue{
		id: DatasetNotFoundId,
		mdMsg: `
# Item table not found!

We could not read the item table you pointed us at.

## Things you can try:
- Check the path given to --items:
~~~
$ respi --items /path/to/items.csv
~~~
- Verify the file exists and is readable`,
	}

	datasetMalformedIssue = &Issue{
		id: DatasetMalformedId,
		mdMsg: `
# Item table is malformed!

A row of the item table does not have the expected shape.

## Every row must have exactly 25 fields:
1. item name
2. four elemental flags (fire, ice, light, wind; non-empty means set)
3. four category tags
4. material number OR recipe number (small integers, mutually exclusive)
5. for recipe rows: chapter, synthesis type, four ingredient specifiers,
   two output category tags, two recipe/required-item morph pairs,
   extra synthesis quantity, effect spread

## Things you can try:
- Check the row named in the error message above
- Make sure no field contains an unescaped comma
- Re-export the table with all 25 columns present`,
	}

	unknownItemReferenceIssue = &Issue{
		id: UnknownItemReferenceId,
		mdMsg: `
# Unknown item reference!

A recipe row references an item name that never appears as an item row.
The dependency graph cannot be built from an incomplete table.

## Things you can try:
- Check the name in the error message above for typos
- Add the missing item row to the table
- Morph columns (from_recipe / from_requiring) must name listed items`,
	}

	morphBaseNotCraftableIssue = &Issue{
		id: MorphBaseNotCraftableId,
		mdMsg: `
# Morph base is not craftable!

A morph names a base item (from_recipe) that exists in the table but is not
produced by any synthesis. A morph levels up an existing recipe, so its base
must be a recipe output.

## Things you can try:
- Check the from_recipe value in the error message above
- Give the base item a recipe number and synthesis fields
- Remove the morph pair if the base was never meant to be craftable`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file exists but could not be read or parsed.

## Things you can try:
- Check the TOML syntax of your config file
- Remove the file to fall back to defaults
- Run with --verbose for the underlying parse error`,
	}

	issues = map[Id]*Issue{
		datasetNotFoundIssue.Id():       datasetNotFoundIssue,
		datasetMalformedIssue.Id():      datasetMalformedIssue,
		unknownItemReferenceIssue.Id():  unknownItemReferenceIssue,
		morphBaseNotCraftableIssue.Id(): morphBaseNotCraftableIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
