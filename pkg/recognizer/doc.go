// SPDX-License-Identifier: MPL-2.0

// Package recognizer defines the token-level flag recognizer that argparse
// drives, and provides its production implementation on top of
// github.com/spf13/pflag.
//
// A Recognizer is configured once per parse: it receives a banner, trailer
// lines and flag registrations (a Spec plus a Callback), then consumes every
// flag-style token from the argument slice, invoking the matching callbacks.
// Operands that are not flags stay in the slice, in order, for the caller.
//
// Flag specs are declared with the same string tokens a user would type:
//
//	spec, err := recognizer.ParseSpec([]string{"-s", "--size=N", "Size in bytes"})
//	// spec.Short == "s", spec.Long == "size", spec.Arg == "N"
//
// Tokens that begin with "--" name the long form, tokens that begin with a
// single "-" name the short form, and all other tokens are description lines.
// A value placeholder (after "=" or a space) makes the flag take a value;
// without one the flag is a switch and its callback receives true.
package recognizer
