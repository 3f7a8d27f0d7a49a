// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/hw-lunemann/respi/internal/craft"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the crafting graph",
	Long: `Build the crafting graph from the item table and print node counts by
kind plus the total edge count. A quick sanity check for a freshly
exported table.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	var items, syntheses, morphs int
	for i := 0; i < g.Len(); i++ {
		switch g.Node(craft.NodeID(i)).(type) {
		case *craft.Item:
			items++
		case *craft.Synthesis:
			syntheses++
		case *craft.Morph:
			morphs++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("crafting graph"))
	fmt.Fprintf(out, "  items:      %d\n", items)
	fmt.Fprintf(out, "  syntheses:  %d\n", syntheses)
	fmt.Fprintf(out, "  morphs:     %d\n", morphs)
	fmt.Fprintf(out, "  edges:      %d\n", g.EdgeCount())
	return nil
}
