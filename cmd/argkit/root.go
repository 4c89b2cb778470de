// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/invowk/argkit/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand creates the argkit command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "argkit",
		Short: "Declarative command-line argument parsing, by example",
		Long: TitleStyle.Render("argkit") + SubtitleStyle.Render(" - Declarative command-line argument parsing") + `

argkit demonstrates the argparse package: every subcommand declares its
flags and positional arguments as reusable argument nodes and bundles,
then hands its raw tokens to a parser built from them.

` + SubtitleStyle.Render("Examples:") + `
  argkit hello world             Greet "world"
  argkit hello -vv --help        Show the generated help text
  argkit inspect src dst a b     Show every parsed value and its type
  argkit config show             Show the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newHelloCommand(app))
	root.AddCommand(newInspectCommand(app))
	root.AddCommand(newConfigCommand(app))
	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the code carried by an ExitError.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	// fang overrides root.Version, so the version goes through fang.WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors list their suggestions, and the full chain in verbose mode.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
