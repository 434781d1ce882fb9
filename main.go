// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "provis-cli/cmd/provis"
)

func main() {
	cmd.Execute()
}
