// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/hw-lunemann/respi/internal/craft"
	"github.com/hw-lunemann/respi/internal/suggest"

	"github.com/spf13/cobra"
)

// pathCmd answers a single shortest-path query and exits. Unknown item names
// exit nonzero; two valid items with no connecting path are an ordinary
// (empty) result.
var pathCmd = &cobra.Command{
	Use:   "path <start> <goal>",
	Short: "Print the shortest crafting path between two items",
	Long: `Print the shortest crafting path from the start item to the goal item,
as the ordered chain of items, syntheses, and morphs in between.

Both arguments must exactly match an item name from the table. When no
chain of recipes connects the two items, "no path" is reported and the
exit code stays zero; an unknown item name exits with code 1.`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func runPath(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	start, err := resolveItem(cmd, g, args[0])
	if err != nil {
		return err
	}
	goal, err := resolveItem(cmd, g, args[1])
	if err != nil {
		return err
	}

	path, ok := g.ShortestPath(start, goal)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "no path from %q to %q\n", args[0], args[1])
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), g.RenderPath(path, separator))
	return nil
}

// resolveItem maps name to its item node, printing near-miss suggestions on
// failure.
func resolveItem(cmd *cobra.Command, g *craft.Graph, name string) (craft.NodeID, error) {
	if id, ok := g.FindItem(name); ok {
		return id, nil
	}

	for _, near := range suggest.Closest(name, g.ItemNames(), suggestions) {
		fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render("did you mean: ")+ItemStyle.Render(near))
	}
	return 0, &ExitError{Code: 1, Err: fmt.Errorf("no item named %q", name)}
}
