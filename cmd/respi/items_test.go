// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"github.com/hw-lunemann/respi/internal/craft"
	"github.com/hw-lunemann/respi/internal/dataset"
)

func TestElementString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		item *craft.Item
		want string
	}{
		{"none", &craft.Item{}, ""},
		{"single", &craft.Item{Fire: true}, "fire"},
		{"pair", &craft.Item{Ice: true, Wind: true}, "ice, wind"},
		{"all", &craft.Item{Fire: true, Ice: true, Light: true, Wind: true}, "fire, ice, light, wind"},
	}
	for _, tc := range cases {
		if got := elementString(tc.item); got != tc.want {
			t.Errorf("%s: elementString() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClassString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		number dataset.ItemNumber
		want   string
	}{
		{dataset.ItemNumber{}, "unclassified"},
		{dataset.ItemNumber{Class: dataset.MaterialNumber, Number: 7}, "material 7"},
		{dataset.ItemNumber{Class: dataset.RecipeNumber, Number: 12}, "recipe 12"},
	}
	for _, tc := range cases {
		if got := classString(tc.number); got != tc.want {
			t.Errorf("classString(%+v) = %q, want %q", tc.number, got, tc.want)
		}
	}
}
