// SPDX-License-Identifier: MPL-2.0

package craft

import (
	"reflect"
	"testing"

	"github.com/hw-lunemann/respi/internal/dataset"
)

// chainGraph builds Wood -> Synthesis -> Plank -> Synthesis -> Table, with an
// unrelated Stone item on the side.
func chainGraph(t *testing.T) *Graph {
	t.Helper()
	return mustBuild(t, &dataset.Table{
		Items: []dataset.Item{
			material("Wood"),
			material("Stone"),
			product("Plank"),
			product("Table"),
		},
		Syntheses: []dataset.Synthesis{
			{Name: "Plank", Ingredients: []string{"Wood"}},
			{Name: "Table", Ingredients: []string{"Plank"}},
		},
	})
}

func TestShortestPath_Chain(t *testing.T) {
	t.Parallel()
	g := chainGraph(t)
	wood, _ := g.FindItem("Wood")
	table, _ := g.FindItem("Table")

	path, ok := g.ShortestPath(wood, table)
	if !ok {
		t.Fatal("expected Table reachable from Wood")
	}
	want := []string{"Wood", "Synthesis", "Plank", "Synthesis", "Table"}
	if got := g.Labels(path); !reflect.DeepEqual(got, want) {
		t.Errorf("expected path %v, got %v", want, got)
	}
}

func TestShortestPath_SameNode(t *testing.T) {
	t.Parallel()
	g := chainGraph(t)
	wood, _ := g.FindItem("Wood")

	path, ok := g.ShortestPath(wood, wood)
	if !ok || len(path) != 1 || path[0] != wood {
		t.Errorf("expected single-node path, got %v (ok=%v)", path, ok)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	t.Parallel()
	g := chainGraph(t)
	wood, _ := g.FindItem("Wood")
	stone, _ := g.FindItem("Stone")

	if path, ok := g.ShortestPath(wood, stone); ok || path != nil {
		t.Errorf("expected no path to Stone, got %v (ok=%v)", path, ok)
	}
}

func TestShortestPath_DirectedOnly(t *testing.T) {
	t.Parallel()
	// Edges point from material to product; the reverse direction must not
	// be walkable.
	g := chainGraph(t)
	wood, _ := g.FindItem("Wood")
	table, _ := g.FindItem("Table")

	if _, ok := g.ShortestPath(table, wood); ok {
		t.Error("expected no path against edge direction")
	}
}

func TestShortestPath_PrefersFewerEdges(t *testing.T) {
	t.Parallel()
	// Table is craftable from Plank, and Plank itself from Wood. A second
	// synthesis makes Table directly from Wood; the two-hop route must win
	// over the four-hop one.
	g := mustBuild(t, &dataset.Table{
		Items: []dataset.Item{
			material("Wood"),
			product("Plank"),
			product("Table"),
		},
		Syntheses: []dataset.Synthesis{
			{Name: "Plank", Ingredients: []string{"Wood"}},
			{Name: "Table", Ingredients: []string{"Plank"}},
			{Name: "Table", Ingredients: []string{"Wood"}},
		},
	})
	wood, _ := g.FindItem("Wood")
	table, _ := g.FindItem("Table")

	path, ok := g.ShortestPath(wood, table)
	if !ok {
		t.Fatal("expected Table reachable from Wood")
	}
	if len(path) != 3 {
		t.Errorf("expected three-node path via the direct synthesis, got %v", g.Labels(path))
	}
}

func TestRenderPath(t *testing.T) {
	t.Parallel()
	g := chainGraph(t)
	wood, _ := g.FindItem("Wood")
	table, _ := g.FindItem("Table")

	path, _ := g.ShortestPath(wood, table)
	want := "Wood -> Synthesis -> Plank -> Synthesis -> Table"
	if got := g.RenderPath(path, " -> "); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderPath_SingleNode(t *testing.T) {
	t.Parallel()
	g := chainGraph(t)
	wood, _ := g.FindItem("Wood")

	if got := g.RenderPath([]NodeID{wood}, " -> "); got != "Wood" {
		t.Errorf("expected bare label without separator, got %q", got)
	}
}
