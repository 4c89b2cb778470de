// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"

	"github.com/invowk/argkit/pkg/argparse"
)

// FromArgparse wraps an error returned by the argparse package in an
// ActionableError linked to the matching catalog issue. program names the
// command in suggestions. Help requests, nil and foreign errors are returned
// unchanged.
func FromArgparse(err error, program string) error {
	if err == nil || errors.Is(err, argparse.ErrHelp) {
		return err
	}

	helpHint := fmt.Sprintf("Run '%s --help' for usage", program)

	var (
		parseErr *argparse.ParseError
		buildErr *argparse.BuildError
		keyErr   *argparse.UnknownKeyError
	)
	switch {
	case errors.As(err, &parseErr):
		ctx := NewErrorContext().WithOperation("parse arguments").Wrap(err)
		switch parseErr.Type {
		case argparse.ParseErrMissingOperand:
			ctx.WithIssue(MissingOperandId).
				WithSuggestion(fmt.Sprintf("Pass a value for %s", parseErr.Token))
		case argparse.ParseErrNeedlessArgument:
			ctx.WithIssue(NeedlessArgumentId).
				WithSuggestion(fmt.Sprintf("Remove %q or quote it together with the previous argument", parseErr.Token))
		case argparse.ParseErrInvalidFlag:
			ctx.WithIssue(InvalidFlagId)
		}
		return ctx.WithSuggestion(helpHint).BuildError()
	case errors.As(err, &buildErr):
		return NewErrorContext().
			WithOperation("declare arguments").
			WithResource(buildErr.Key).
			WithIssue(ArgumentDeclarationId).
			Wrap(err).
			BuildError()
	case errors.As(err, &keyErr):
		return NewErrorContext().
			WithOperation("read argument").
			WithResource(keyErr.Key).
			WithIssue(UnknownKeyId).
			Wrap(err).
			BuildError()
	default:
		return err
	}
}

// Lookup returns the catalog issue linked to err through an ActionableError
// anywhere in its chain, or nil.
func Lookup(err error) *Issue {
	var ae *ActionableError
	if errors.As(err, &ae) && ae.Issue != 0 {
		return Get(ae.Issue)
	}
	return nil
}
