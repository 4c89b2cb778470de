// SPDX-License-Identifier: MPL-2.0

// Command argkit demonstrates declarative argument parsing with argparse.
package main

import "github.com/invowk/argkit/cmd/argkit"

func main() {
	cmd.Execute()
}
