// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/hw-lunemann/respi/internal/craft"
	"github.com/hw-lunemann/respi/internal/dataset"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// recipesOnly filters the listing to synthesized items.
var recipesOnly bool

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the items in the table",
	Long: `List every item from the table with its elemental affinities, category
tags, and classification (material, recipe, or unclassified).`,
	Args: cobra.NoArgs,
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().BoolVar(&recipesOnly, "recipes", false, "only list items produced by a synthesis")
}

func runItems(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		Headers("NAME", "ELEMENTS", "CATEGORIES", "CLASS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle
			}
			if col == 0 {
				return ItemStyle
			}
			return lipgloss.NewStyle()
		})

	for _, id := range g.Items() {
		item := g.Node(id).(*craft.Item)
		if recipesOnly && item.Number.Class != dataset.RecipeNumber {
			continue
		}
		t.Row(
			item.Name,
			elementString(item),
			strings.Join(item.Categories, ", "),
			classString(item.Number),
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

// elementString renders the four affinity flags as a compact list.
func elementString(item *craft.Item) string {
	var parts []string
	if item.Fire {
		parts = append(parts, "fire")
	}
	if item.Ice {
		parts = append(parts, "ice")
	}
	if item.Light {
		parts = append(parts, "light")
	}
	if item.Wind {
		parts = append(parts, "wind")
	}
	return strings.Join(parts, ", ")
}

// classString renders the classification with its number where one exists.
func classString(n dataset.ItemNumber) string {
	if n.Class == dataset.Unclassified {
		return n.Class.String()
	}
	return fmt.Sprintf("%s %d", n.Class, n.Number)
}
