// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/argkit/internal/config"
	"github.com/invowk/argkit/internal/issue"
	"github.com/invowk/argkit/pkg/argparse"
)

type (
	// declareFunc adds a command's arguments to p. cfg supplies defaults
	// such as the greeting.
	declareFunc func(p *argparse.Parser, cfg *config.Config) error

	// actionFunc runs a command with its parsed values. rest holds the
	// operands left unparsed, which is only non-empty when allow_unparsed
	// is configured.
	actionFunc func(app *App, values *argparse.Values, rest []string) error
)

// newArgCommand returns a cobra command whose raw tokens are parsed by an
// argparse.Parser built with declare. Cobra's own flag handling is off, so
// "-h" and "--help" reach the parser too.
func newArgCommand(app *App, use, short string, declare declareFunc, action actionFunc) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return app.runArgs(cmd.Context(), cmd.Name(), args, declare, action)
		},
	}
}

// runArgs loads the configuration, builds the parser, parses args (after
// the configured default_args) and runs action.
func (a *App) runArgs(ctx context.Context, name string, args []string, declare declareFunc, action actionFunc) error {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{})
	if err != nil {
		return a.fail(ExitSetup, err, false)
	}

	program := cmp.Or(cfg.Program, config.AppName) + " " + name
	parser, err := argparse.BuildParser(
		func(p *argparse.Parser) error { return declare(p, cfg) },
		argparse.WithProgram(program),
		argparse.WithLogger(a.newLogger(cfg.Verbose)),
		argparse.AllowUnparsedOperands(cfg.AllowUnparsed),
	)
	if err != nil {
		return a.fail(ExitSetup, issue.FromArgparse(err, program), cfg.Verbose)
	}

	argv, err := cfg.DefaultArgv()
	if err != nil {
		return a.fail(ExitSetup, err, cfg.Verbose)
	}
	argv = append(argv, args...)

	values, err := parser.Parse(&argv)
	switch {
	case errors.Is(err, argparse.ErrHelp):
		help, helpErr := parser.Help()
		if helpErr != nil {
			return a.fail(ExitSetup, issue.FromArgparse(helpErr, program), cfg.Verbose)
		}
		fmt.Fprint(a.stdout, help)
		return nil
	case err != nil:
		return a.fail(ExitUsage, issue.FromArgparse(err, program), cfg.Verbose)
	}

	if err := action(a, values, argv); err != nil {
		return a.fail(ExitSetup, issue.FromArgparse(err, program), cfg.Verbose)
	}
	return nil
}

// fail wraps err in an ExitError whose message is the user-facing text.
// In verbose mode the catalog explanation linked to err is written to
// stderr first.
func (a *App) fail(code ExitCode, err error, verbose bool) error {
	if verbose {
		if iss := issue.Lookup(err); iss != nil {
			if rendered, renderErr := iss.Render("auto"); renderErr == nil {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}
	return &ExitError{
		Code: code,
		Err:  &displayError{text: formatErrorForDisplay(err, verbose), err: err},
	}
}
