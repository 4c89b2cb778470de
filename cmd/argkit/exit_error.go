// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

const (
	// ExitOK is returned for success and for help requests.
	ExitOK ExitCode = 0
	// ExitUsage is returned when the command line does not match the
	// declared arguments.
	ExitUsage ExitCode = 1
	// ExitSetup is returned when the arguments are declared incorrectly or
	// the configuration cannot be loaded.
	ExitSetup ExitCode = 2
)

type (
	// ExitCode is a process exit status.
	ExitCode int

	// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
	ExitError struct {
		Code ExitCode
		Err  error
	}

	// displayError carries the text shown to the user for err.
	displayError struct {
		text string
		err  error
	}
)

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *displayError) Error() string { return e.text }

func (e *displayError) Unwrap() error { return e.err }
