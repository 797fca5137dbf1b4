// SPDX-License-Identifier: MPL-2.0

package main

import cmd "mcl-cli/cmd/mcl"

func main() {
	cmd.Execute()
}
