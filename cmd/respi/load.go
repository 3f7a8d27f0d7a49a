// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hw-lunemann/respi/internal/craft"
	"github.com/hw-lunemann/respi/internal/dataset"
	"github.com/hw-lunemann/respi/internal/issue"

	"github.com/charmbracelet/log"
)

// loadGraph parses the --items table and builds the crafting graph. All
// failures here are fatal: a broken table produces no partial graph.
func loadGraph() (*craft.Graph, error) {
	started := time.Now()

	tbl, err := dataset.Load(itemsPath)
	if err != nil {
		return nil, fatalDatasetError(err)
	}
	log.Debug("item table parsed",
		"items", len(tbl.Items),
		"syntheses", len(tbl.Syntheses),
		"morphs", len(tbl.Morphs),
	)

	g, err := craft.Build(tbl)
	if err != nil {
		return nil, fatalBuildError(err)
	}
	log.Debug("crafting graph built",
		"nodes", g.Len(),
		"edges", g.EdgeCount(),
		"elapsed", time.Since(started),
	)
	return g, nil
}

// fatalDatasetError reports an unreadable or malformed item table and returns
// the ExitError that aborts the run.
func fatalDatasetError(err error) error {
	var rowErr *dataset.RowError
	if errors.As(err, &rowErr) {
		reportIssue(issue.DatasetMalformedId)
	} else {
		reportIssue(issue.DatasetNotFoundId)
	}

	ae := issue.NewErrorContext().
		WithOperation("load item table").
		WithResource(itemsPath).
		Wrap(err).
		Build()
	return &ExitError{Code: 1, Err: ae}
}

// fatalBuildError reports an unresolved reference found during graph
// construction and returns the ExitError that aborts the run.
func fatalBuildError(err error) error {
	var unknown *craft.UnknownItemError
	var missing *craft.MissingRecipeError
	switch {
	case errors.As(err, &unknown):
		reportIssue(issue.UnknownItemReferenceId)
	case errors.As(err, &missing):
		reportIssue(issue.MorphBaseNotCraftableId)
	}

	return &ExitError{Code: 1, Err: issue.WrapWithContext(err, "build crafting graph", itemsPath)}
}

// reportIssue prints the rendered issue card to stderr, falling back to the
// raw markdown when rendering fails.
func reportIssue(id issue.Id) {
	is := issue.Get(id)
	if is == nil {
		return
	}
	card, err := is.Render("auto")
	if err != nil {
		card = string(is.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, card)
}
