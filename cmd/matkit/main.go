// Command matkit reduces and validates matrices from YAML files.
package main

import (
	"os"

	"github.com/matkit/matkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
