// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for respi.
//
// This package implements the Cobra command hierarchy for the respi CLI:
// the root command (which runs the interactive query session), one-shot
// path queries, and the item-table inspection subcommands.
package cmd
