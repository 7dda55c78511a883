// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/MohamedXi/hopla-cli/cmd/hopla"

func main() {
	cmd.Execute()
}
