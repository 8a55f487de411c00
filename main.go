// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/dotnet-cast/cmd/dotnetcast"

func main() {
	cmd.Execute()
}
