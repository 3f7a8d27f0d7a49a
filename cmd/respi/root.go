// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hw-lunemann/respi/internal/config"
	"github.com/hw-lunemann/respi/internal/issue"
	"github.com/hw-lunemann/respi/internal/session"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// itemsPath is the mandatory path to the item table
	itemsPath string

	// separator and suggestions come from config; flags never set them.
	separator   = " -> "
	suggestions = 3

	// rootCmd represents the base command; run without a subcommand it starts
	// the interactive query session.
	rootCmd = &cobra.Command{
		Use:   "respi",
		Short: "Shortest crafting paths over an item table",
		Long: TitleStyle.Render("respi") + SubtitleStyle.Render(" - shortest crafting paths over an item table") + `

respi reads an item table (csv) describing craftable items, the
syntheses that produce them, and morph upgrades, builds the crafting
dependency graph, and answers shortest-path queries between any two
items: the minimal chain of intermediates and recipes that turns a
starting item into a desired one.

Run without a subcommand for interactive start/goal prompts.

` + SubtitleStyle.Render("Examples:") + `
  respi -i items.csv                  Interactive session
  respi -i items.csv path Wood Table  One-shot query
  respi -i items.csv items            List all items
  respi -i items.csv stats            Graph summary`,
		RunE: runSession,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&itemsPath, "items", "i", "", "csv file containing all items")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/respi/config.toml)")
	cobra.CheckErr(rootCmd.MarkPersistentFlagRequired("items"))

	// Add subcommands
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(statsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file, if any, and wires its UI defaults.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Config failures are not fatal; defaults apply.
		reportIssue(issue.ConfigLoadFailedId)
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil {
		// Apply verbose from config if not set via flag
		if !verbose {
			verbose = cfg.UI.Verbose
		}
		separator = cfg.UI.Separator
		suggestions = cfg.UI.Suggestions
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render with their suggestions; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// runSession starts the interactive query loop.
func runSession(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	var prompter session.Prompter
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompter = session.NewTermPrompter()
	} else {
		// Piped input: plain line reads, no TUI.
		prompter = session.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	s := session.New(g, prompter, cmd.OutOrStdout(), session.Options{
		Separator:   separator,
		Suggestions: suggestions,
	})
	return s.Run()
}
