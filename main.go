// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/newtype/cmd/newtype"

func main() {
	cmd.Execute()
}
