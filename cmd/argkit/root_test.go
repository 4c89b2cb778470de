// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"github.com/invowk/argkit/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v0.3.0"
		Commit = "9f8e7d6"
		BuildDate = "2026-10-01T08:30:00Z"

		got := getVersionString()
		want := "v0.3.0 (commit: 9f8e7d6, built: 2026-10-01T08:30:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got, want := getVersionString(), "dev (built from source)"; got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	if got := formatErrorForDisplay(plain, true); got != "boom" {
		t.Errorf("formatErrorForDisplay(plain) = %q, want %q", got, "boom")
	}

	ae := issue.NewErrorContext().
		WithOperation("parse arguments").
		WithSuggestion("Try again").
		Wrap(plain).
		Build()

	want := "failed to parse arguments: boom\n\n  • Try again"
	if got := formatErrorForDisplay(ae, false); got != want {
		t.Errorf("formatErrorForDisplay(actionable) = %q, want %q", got, want)
	}

	wantVerbose := want + "\n\nError chain:\n  1. boom"
	if got := formatErrorForDisplay(ae, true); got != wantVerbose {
		t.Errorf("formatErrorForDisplay(actionable, verbose) = %q, want %q", got, wantVerbose)
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad input")
	err := &ExitError{Code: ExitUsage, Err: &displayError{text: "shown", err: cause}}

	if got := err.Error(); got != "shown" {
		t.Errorf("Error() = %q, want %q", got, "shown")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	bare := &ExitError{Code: ExitSetup}
	if got, want := bare.Error(), "exit status 2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
