package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/sdkconf/cmd/sdkconf/commands"
)

const (
	cmdName = "sdkconf"

	shortDesc = "Edit the settings collections of an SDK installation."
	longDesc  = `sdkconf edits the settings collections of an SDK installation: kits,
toolchains, Qt versions, devices, CMake tools and debuggers.

Each collection is one file under the SDK path. Every command loads a
collection, validates the request against it and the collections it
references, and writes the result back atomically. A rejected request
never modifies a file.

Exit codes: 0 on success, 2 when a request is rejected, 3 when the
result could not be saved, 1 for any other error.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(commands.ExitCode(err))
	}
}
