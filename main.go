// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "github.com/hw-lunemann/respi/cmd/respi"
)

func main() {
	cmd.Execute()
}
