// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the argkit CLI: a cobra command tree whose argument
// commands hand their raw tokens to an argparse.Parser instead of cobra's
// own flag handling.
package cmd
