// Command esportes is a terminal browser for a bundled sports catalog.
package main

import (
	"os"

	"github.com/Paulo20Lima/esportes/internal/cli"
	"github.com/Paulo20Lima/esportes/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		// Cobra already printed the error.
		return 1
	}
	return 0
}
